package email

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ErrInvalidRequest: request sai địa chỉ/thiếu subject, gửi lại cũng không thành công
var ErrInvalidRequest = errors.New("invalid email request")

type EmailRequest struct {
	To          []string
	Cc          []string
	Subject     string
	Body        string
	IsHTML      bool
	Attachments []Attachment
	Inline      []Attachment // ảnh nhúng, body tham chiếu bằng cid:<Filename>
}

// Validate chỉ kiểm tra format địa chỉ, không tra MX
func (r EmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.To, validation.Required.Error("cần ít nhất một người nhận"),
			validation.Each(validation.Required, is.EmailFormat)),
		validation.Field(&r.Cc, validation.Each(validation.Required, is.EmailFormat)),
		validation.Field(&r.Subject, validation.Required),
		validation.Field(&r.Inline, validation.Each(validation.By(attachmentRule))),
		validation.Field(&r.Attachments, validation.Each(validation.By(attachmentRule))),
	)
}

type Attachment struct {
	Filename string
	Content  []byte
	MimeType string
}

func attachmentRule(value interface{}) error {
	a, _ := value.(Attachment)
	if a.Filename == "" {
		return errors.New("thiếu tên file")
	}
	if len(a.Content) == 0 {
		return errors.New("file rỗng")
	}
	return nil
}
