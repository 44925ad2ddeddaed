package model

import "ecommerce-backend/internal/shared/apperror"

const (
	ErrCodeUserNotFound       = "USR_NOT_FOUND"
	ErrCodeCustomerNotFound   = "USR_CUSTOMER_NOT_FOUND"
	ErrCodeNotCustomer        = "USR_NOT_CUSTOMER"
	ErrCodeInvalidCredentials = "USR_INVALID_CREDENTIALS"
	ErrCodeUserInactive       = "USR_INACTIVE"
)

var (
	ErrUserNotFound       = apperror.NotFound(ErrCodeUserNotFound, "Người dùng không tồn tại")
	ErrCustomerNotFound   = apperror.NotFound(ErrCodeCustomerNotFound, "Khách hàng không tồn tại")
	ErrNotCustomer        = apperror.Validation(ErrCodeNotCustomer, "Người dùng không phải khách hàng")
	ErrInvalidCredentials = apperror.Unauthorized(ErrCodeInvalidCredentials, "Email hoặc mật khẩu không đúng")
	ErrUserInactive       = apperror.Unauthorized(ErrCodeUserInactive, "Tài khoản đã bị khóa")
)
