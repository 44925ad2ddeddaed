package model

import "time"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ToVoucherResponse(v *Voucher) VoucherResponse {
	return VoucherResponse{
		ID:                v.ID,
		Code:              v.Code,
		Name:              v.Name,
		Description:       v.Description,
		StartDate:         FormatDate(v.StartDate),
		EndDate:           FormatDate(v.EndDate),
		Active:            v.Active,
		Discount:          v.Discount,
		MinOrderAmount:    v.MinOrderAmount,
		MaxDiscountAmount: v.MaxDiscountAmount,
		VoucherType:       v.VoucherType,
		RankingID:         v.RankingID,
		RankingName:       v.RankingName,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func ToVoucherCustomerResponse(vc VoucherCustomer) VoucherCustomerResponse {
	return VoucherCustomerResponse{
		ID:         vc.ID,
		CustomerID: vc.CustomerID,
		Code:       vc.Code,
		Status:     vc.Status,
	}
}

func ToVoucherDetailResponse(v *Voucher, issuances []VoucherCustomer) VoucherDetailResponse {
	customers := make([]VoucherCustomerResponse, 0, len(issuances))
	for _, vc := range issuances {
		customers = append(customers, ToVoucherCustomerResponse(vc))
	}
	return VoucherDetailResponse{
		VoucherResponse: ToVoucherResponse(v),
		Customers:       customers,
	}
}

// ToAvailableVoucher ghép voucher với code customer sẽ dùng
func ToAvailableVoucher(v *Voucher, code string) AvailableVoucherResponse {
	return AvailableVoucherResponse{
		VoucherID:         v.ID,
		Code:              code,
		Name:              v.Name,
		Description:       v.Description,
		VoucherType:       v.VoucherType,
		Discount:          v.Discount,
		MinOrderAmount:    v.MinOrderAmount,
		MaxDiscountAmount: v.MaxDiscountAmount,
		StartDate:         FormatDate(v.StartDate),
		EndDate:           FormatDate(v.EndDate),
	}
}
