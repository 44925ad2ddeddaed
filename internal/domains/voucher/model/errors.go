package model

import "ecommerce-backend/internal/shared/apperror"

const (
	ErrCodeVoucherNotFound    = "VOU_NOT_FOUND"
	ErrCodeCodeExists         = "VOU_CODE_EXISTS"
	ErrCodeVoucherInactive    = "VOU_INACTIVE"
	ErrCodeAlreadySent        = "VOU_ALREADY_SENT"
	ErrCodeAlreadyIssued      = "VOU_ALREADY_ISSUED"
	ErrCodeCannotRevoke       = "VOU_CANNOT_REVOKE_SENT"
	ErrCodeImmutableField     = "VOU_IMMUTABLE_FIELD"
	ErrCodeRankingUnavailable = "VOU_RANKING_REQUIRED"
)

var (
	ErrVoucherNotFound = apperror.NotFound(ErrCodeVoucherNotFound, "Voucher không tồn tại")
	ErrCodeAlreadyUsed = apperror.Conflict(ErrCodeCodeExists, "Mã voucher đã tồn tại")
	ErrVoucherInactive = apperror.IllegalState(ErrCodeVoucherInactive, "Voucher đang tắt, không thể gửi")
	ErrAlreadySent     = apperror.IllegalState(ErrCodeAlreadySent, "Voucher đã được gửi cho khách hàng")
	ErrAlreadyIssued   = apperror.Conflict(ErrCodeAlreadyIssued, "Khách hàng đã được phát voucher này")

	// Không thể bỏ customer đã nhận voucher khỏi danh sách
	ErrCannotRevokeSent = apperror.Conflict(ErrCodeCannotRevoke, "Không thể thu hồi voucher đã gửi")

	ErrImmutableField = apperror.Validation(ErrCodeImmutableField, "Không thể thay đổi loại hoặc mã voucher sau khi tạo")
	ErrMissingRanking = apperror.IllegalState(ErrCodeRankingUnavailable, "Voucher RANK chưa gắn hạng thành viên")
)
