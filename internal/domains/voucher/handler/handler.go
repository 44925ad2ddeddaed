package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/domains/voucher/service"
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

// =====================================================
// CUSTOMER
// =====================================================

// GetAvailable GET /api/v1/vouchers/available
func (h *Handler) GetAvailable(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	vouchers, err := h.service.GetAvailableVouchersForCustomer(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get available vouchers successfully", vouchers)
}

// =====================================================
// ADMIN
// =====================================================

// Create POST /api/v1/admin/vouchers
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Voucher created successfully", res)
}

// List GET /api/v1/admin/vouchers
func (h *Handler) List(c *gin.Context) {
	var req model.SearchVoucherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	res, err := h.service.SearchVouchers(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "Get vouchers successfully", res.Items,
		response.NewMeta(res.Page, res.Limit, res.Total))
}

// Get GET /api/v1/admin/vouchers/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Voucher ID không hợp lệ")
		return
	}

	res, err := h.service.GetVoucherByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get voucher successfully", res)
}

// Update PUT /api/v1/admin/vouchers/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Voucher ID không hợp lệ")
		return
	}

	var req model.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.UpdateVoucher(c.Request.Context(), id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Voucher updated successfully", res)
}

// ChangeStatus PATCH /api/v1/admin/vouchers/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Voucher ID không hợp lệ")
		return
	}

	res, err := h.service.ChangeStatus(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Voucher status changed", res)
}

// Send POST /api/v1/admin/vouchers/:id/send
func (h *Handler) Send(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Voucher ID không hợp lệ")
		return
	}

	res, err := h.service.SendVoucherToCustomers(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Voucher sent", res)
}

// Export GET /api/v1/admin/vouchers/:id/export
func (h *Handler) Export(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Voucher ID không hợp lệ")
		return
	}

	res, err := h.service.ExportIssuance(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Voucher issuance exported", res)
}
