package model

import "ecommerce-backend/internal/shared/apperror"

const (
	ErrCodeRankingNotFound = "RANK_NOT_FOUND"
	ErrCodeNoRankingBand   = "RANK_NO_BAND"
)

var (
	ErrRankingNotFound = apperror.NotFound(ErrCodeRankingNotFound, "Hạng thành viên không tồn tại")
	ErrNoRankingBand   = apperror.IllegalState(ErrCodeNoRankingBand, "Không có hạng thành viên phù hợp với mức chi tiêu")
)
