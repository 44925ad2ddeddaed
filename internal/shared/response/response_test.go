package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/shared/apperror"
)

func run(err error) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleError(c, err)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHandleError_AppError(t *testing.T) {
	w, body := run(fmt.Errorf("wrap: %w", apperror.Conflict("VOU_CODE_EXISTS", "Mã voucher đã tồn tại")))

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, body.Error)
	assert.False(t, body.Success)
	assert.Equal(t, "VOU_CODE_EXISTS", body.Error.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	w, body := run(validation.Errors{"name": errors.New("bắt buộc")})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VAL_INVALID_INPUT", body.Error.Code)
}

func TestHandleError_Unknown(t *testing.T) {
	w, body := run(errors.New("db exploded"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Message, "db exploded")
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, NewMeta(1, 10, 21).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 0, 5).TotalPages)
}
