package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/shared/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta tính total_pages từ total và limit
func NewMeta(page, limit, total int) *Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// ====== SUCCESS ======

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, message string, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ====== ERROR ======

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorWithDetails(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func Forbidden(c *gin.Context, message string) {
	ErrorWithDetails(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

// HandleError map error sang HTTP response:
//   - validation.Errors (ozzo) -> 400 với chi tiết từng field
//   - apperror.AppError -> status theo Kind
//   - còn lại -> 500, log lỗi gốc và không lộ ra client
func HandleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		ErrorWithDetails(c, http.StatusBadRequest, "VAL_INVALID_INPUT", "Dữ liệu không hợp lệ", vErrs)
		return
	}

	if appErr, ok := apperror.As(err); ok {
		if appErr.Kind == apperror.KindInternal {
			logInternal(c, err)
		}
		var details interface{}
		if len(appErr.Details) > 0 {
			details = appErr.Details
		}
		ErrorWithDetails(c, appErr.HTTPStatus(), appErr.Code, appErr.Message, details)
		return
	}

	logInternal(c, err)
	ErrorWithDetails(c, http.StatusInternalServerError, "SYS_INTERNAL_ERROR", "Internal server error", nil)
}

func logInternal(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
}
