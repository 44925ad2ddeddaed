package apperror

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind phân loại lỗi nghiệp vụ, quyết định HTTP status
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindConflict     Kind = "CONFLICT"
	KindNotFound     Kind = "NOT_FOUND"
	KindIllegalState Kind = "ILLEGAL_STATE"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL"
)

// AppError là lỗi nghiệp vụ dùng chung cho mọi domain
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is so khớp theo Kind + Code để dùng được errors.Is với các lỗi định nghĩa sẵn
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// WithDetail trả về bản copy có thêm detail
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	cp := *e
	cp.Details = make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// Wrap trả về bản copy gắn cause
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// HTTPStatus map Kind sang HTTP status code
func (e *AppError) HTTPStatus() int {
	return StatusOf(e.Kind)
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindIllegalState:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ====== CONSTRUCTORS ======

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *AppError {
	return New(KindValidation, code, message)
}

func Conflict(code, message string) *AppError {
	return New(KindConflict, code, message)
}

func NotFound(code, message string) *AppError {
	return New(KindNotFound, code, message)
}

func IllegalState(code, message string) *AppError {
	return New(KindIllegalState, code, message)
}

func Unauthorized(code, message string) *AppError {
	return New(KindUnauthorized, code, message)
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Code: "SYS_INTERNAL_ERROR", Message: message, Err: err}
}

// ErrInvalidInput bọc lỗi ozzo validation của request DTO
var ErrInvalidInput = Validation("VAL_INVALID_INPUT", "Dữ liệu không hợp lệ")

// FromValidation chuyển validation.Errors thành AppError kind VALIDATION, giữ nguyên lỗi gốc
// để response vẫn trả chi tiết từng field. Các lỗi khác trả về như cũ.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return ErrInvalidInput.Wrap(err)
	}
	return err
}

// ====== HELPERS ======

// As lấy AppError trong error chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf trả về Kind của err, lỗi không phải AppError được coi là Internal
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsIllegalState(err error) bool { return KindOf(err) == KindIllegalState }
