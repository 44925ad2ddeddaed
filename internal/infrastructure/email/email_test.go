package email

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/shared"
)

func TestBuildVoucherEmail(t *testing.T) {
	req, err := BuildVoucherEmail(shared.VoucherEmailPayload{
		Email:             "a@shop.vn",
		CustomerName:      "<script>x</script>",
		VoucherName:       "Sinh nhật",
		Code:              "BDAY2024",
		Discount:          "100000",
		MinOrderAmount:    "500000",
		MaxDiscountAmount: "100000",
		StartDate:         "2024-06-01",
		EndDate:           "2024-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, VoucherEmailSubject, req.Subject)
	assert.True(t, req.IsHTML)
	assert.Contains(t, req.Body, "BDAY2024")
	assert.Contains(t, req.Body, "2024-06-01 đến 2024-06-30")
	assert.Contains(t, req.Body, "cid:"+voucherQRFilename)
	assert.False(t, strings.Contains(req.Body, "<script>"), "customer name must be escaped")

	require.Len(t, req.Inline, 1)
	img, err := png.Decode(bytes.NewReader(req.Inline[0].Content))
	require.NoError(t, err)
	assert.Equal(t, voucherQRSize, img.Bounds().Dx())
}

func TestEmailRequest_Validate(t *testing.T) {
	valid := EmailRequest{To: []string{"a@shop.vn"}, Subject: "x"}
	require.NoError(t, valid.Validate())

	qr := Attachment{Filename: voucherQRFilename, Content: []byte{1}, MimeType: "image/png"}
	cases := map[string]func(r *EmailRequest){
		"no recipients":   func(r *EmailRequest) { r.To = nil },
		"bad recipient":   func(r *EmailRequest) { r.To = []string{"a@shop.vn", "not-an-email"} },
		"blank recipient": func(r *EmailRequest) { r.To = []string{""} },
		"bad cc":          func(r *EmailRequest) { r.Cc = []string{"x@"} },
		"no subject":      func(r *EmailRequest) { r.Subject = "" },
		"empty inline":    func(r *EmailRequest) { r.Inline = []Attachment{{Filename: "qr.png"}} },
		"unnamed file":    func(r *EmailRequest) { r.Attachments = []Attachment{{Content: []byte{1}}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := valid
			req.Inline = []Attachment{qr}
			mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestBuildMessage(t *testing.T) {
	_, err := buildMessage("noreply@shop.vn", EmailRequest{Subject: "x"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = buildMessage("noreply@shop.vn", EmailRequest{To: []string{"khach-hang"}, Subject: "x"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	m, err := buildMessage("noreply@shop.vn", EmailRequest{
		To:      []string{"a@shop.vn"},
		Subject: VoucherEmailSubject,
		Body:    "<p>hi</p>",
		IsHTML:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@shop.vn"}, m.GetHeader("To"))
	assert.Equal(t, []string{"noreply@shop.vn"}, m.GetHeader("From"))
}
