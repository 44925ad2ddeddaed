package model

import "fmt"

// TargetKind là loại entity catalog mà promotion có thể nhắm tới
type TargetKind string

const (
	TargetProduct  TargetKind = "PRODUCT"
	TargetVariant  TargetKind = "VARIANT"
	TargetCategory TargetKind = "CATEGORY"
	TargetBrand    TargetKind = "BRAND"
)

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetProduct, TargetVariant, TargetCategory, TargetBrand:
		return true
	}
	return false
}

// Table trả về bảng lưu entity tương ứng
func (k TargetKind) Table() (string, error) {
	switch k {
	case TargetProduct:
		return "products", nil
	case TargetVariant:
		return "product_variants", nil
	case TargetCategory:
		return "categories", nil
	case TargetBrand:
		return "brands", nil
	}
	return "", fmt.Errorf("unknown target kind %q", k)
}

// ProductRef gom các khóa catalog của một sản phẩm, dùng để tìm promotion áp dụng.
// VariantID nil khi chỉ tra theo product.
type ProductRef struct {
	ProductID  int64  `json:"product_id"`
	VariantID  *int64 `json:"variant_id,omitempty"`
	CategoryID *int64 `json:"category_id,omitempty"`
	BrandID    *int64 `json:"brand_id,omitempty"`
}
