package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Conflict("VOU_CODE_EXISTS", "Mã voucher đã tồn tại"))

	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestIsMatchesKindAndCode(t *testing.T) {
	base := NotFound("VOU_NOT_FOUND", "Voucher không tồn tại")
	detailed := base.WithDetail("id", int64(7))

	assert.True(t, errors.Is(detailed, base))
	assert.False(t, errors.Is(detailed, NotFound("PROMO_NOT_FOUND", "x")))
	assert.Nil(t, base.Details)
	assert.Equal(t, int64(7), detailed.Details["id"])
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("smtp down")
	err := Internal("Gửi email thất bại", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "smtp down")

	appErr, ok := As(fmt.Errorf("outer: %w", err))
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
}

func TestStatusOf(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindConflict:     http.StatusConflict,
		KindNotFound:     http.StatusNotFound,
		KindIllegalState: http.StatusUnprocessableEntity,
		KindUnauthorized: http.StatusUnauthorized,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, StatusOf(kind), kind)
	}
}

func TestFromValidation(t *testing.T) {
	vErrs := validation.Errors{"code": errors.New("Mã voucher không được để trống")}

	err := FromValidation(vErrs)
	assert.True(t, IsValidation(err))

	var unwrapped validation.Errors
	require.True(t, errors.As(err, &unwrapped))
	assert.Contains(t, unwrapped, "code")

	plain := errors.New("db down")
	assert.Equal(t, plain, FromValidation(plain))
	assert.NoError(t, FromValidation(nil))
}
