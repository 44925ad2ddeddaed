package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/domains/user/service"
	"ecommerce-backend/internal/shared/middleware"
	"ecommerce-backend/internal/shared/response"
	"ecommerce-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successfully", res)
}

// Me GET /api/v1/users/me
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	res, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get profile successfully", res)
}

// RecordSpending POST /api/v1/admin/customers/:id/spending
func (h *Handler) RecordSpending(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Customer ID không hợp lệ")
		return
	}

	var req model.RecordSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.RecordSpending(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Spending recorded", res)
}
