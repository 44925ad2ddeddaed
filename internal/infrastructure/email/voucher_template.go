package email

import (
	"bytes"
	"fmt"
	"html/template"
	"image/png"

	"github.com/skip2/go-qrcode"

	"ecommerce-backend/internal/shared"
)

const (
	VoucherEmailSubject = "Mã ưu đãi dành riêng cho bạn!"
	voucherQRFilename   = "voucher-qr.png"
	voucherQRSize       = 256
)

var voucherTemplate = template.Must(template.New("voucher").Parse(`<!DOCTYPE html>
<html lang="vi">
<body style="font-family: Arial, sans-serif; color: #222;">
  <p>Xin chào {{if .CustomerName}}{{.CustomerName}}{{else}}bạn{{end}},</p>
  <p>Bạn nhận được ưu đãi <strong>{{.VoucherName}}</strong>.</p>
  {{if .Description}}<p>{{.Description}}</p>{{end}}
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td>Mã voucher</td><td><strong style="font-size: 18px;">{{.Code}}</strong></td></tr>
    <tr><td>Giảm</td><td>{{.Discount}}</td></tr>
    <tr><td>Đơn tối thiểu</td><td>{{.MinOrderAmount}}</td></tr>
    <tr><td>Giảm tối đa</td><td>{{.MaxDiscountAmount}}</td></tr>
    <tr><td>Hiệu lực</td><td>{{.StartDate}} đến {{.EndDate}}</td></tr>
  </table>
  <p>Quét mã QR khi thanh toán:</p>
  <img src="cid:{{.QRImage}}" alt="{{.Code}}" width="180" height="180">
</body>
</html>`))

type voucherTemplateData struct {
	shared.VoucherEmailPayload
	QRImage string
}

// RenderVoucherEmail trả về body HTML của email voucher
func RenderVoucherEmail(p shared.VoucherEmailPayload) (string, error) {
	var buf bytes.Buffer
	if err := voucherTemplate.Execute(&buf, voucherTemplateData{VoucherEmailPayload: p, QRImage: voucherQRFilename}); err != nil {
		return "", fmt.Errorf("render voucher email: %w", err)
	}
	return buf.String(), nil
}

// GenerateQRCode tạo QR code và trả về bytes PNG
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildVoucherEmail dựng request email voucher kèm QR của mã
func BuildVoucherEmail(p shared.VoucherEmailPayload) (EmailRequest, error) {
	body, err := RenderVoucherEmail(p)
	if err != nil {
		return EmailRequest{}, err
	}

	qr, err := GenerateQRCode(p.Code, voucherQRSize)
	if err != nil {
		return EmailRequest{}, fmt.Errorf("generate voucher qr: %w", err)
	}

	return EmailRequest{
		To:      []string{p.Email},
		Subject: VoucherEmailSubject,
		Body:    body,
		IsHTML:  true,
		Inline:  []Attachment{{Filename: voucherQRFilename, Content: qr, MimeType: "image/png"}},
	}, nil
}
