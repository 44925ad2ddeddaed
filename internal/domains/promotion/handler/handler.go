package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/promotion/model"
	"ecommerce-backend/internal/domains/promotion/service"
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
// PUBLIC
// =====================================================

// Applicable GET /api/v1/promotions/applicable?product_id=&variant_id=&price=
func (h *Handler) Applicable(c *gin.Context) {
	var (
		q   model.ApplicableQuery
		err error
	)
	if q.ProductID, err = utils.QueryInt64(c, "product_id"); err != nil {
		response.BadRequest(c, "product_id không hợp lệ")
		return
	}
	if q.VariantID, err = utils.QueryInt64(c, "variant_id"); err != nil {
		response.BadRequest(c, "variant_id không hợp lệ")
		return
	}
	if raw := c.Query("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			response.BadRequest(c, "price không hợp lệ")
			return
		}
		q.Price = &price
	}

	res, err := h.service.FindApplicablePromotions(c.Request.Context(), q)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get applicable promotions successfully", res)
}

// Get GET /api/v1/promotions/:id và /api/v1/admin/promotions/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Promotion ID không hợp lệ")
		return
	}

	res, err := h.service.GetPromotionByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get promotion successfully", res)
}

// =====================================================
// ADMIN
// =====================================================

// Create POST /api/v1/admin/promotions
func (h *Handler) Create(c *gin.Context) {
	var req model.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Promotion created successfully", res)
}

// List GET /api/v1/admin/promotions
func (h *Handler) List(c *gin.Context) {
	var req model.SearchPromotionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	res, err := h.service.SearchPromotions(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "Get promotions successfully", res.Items,
		response.NewMeta(res.Page, res.Limit, res.Total))
}

// Update PUT /api/v1/admin/promotions/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Promotion ID không hợp lệ")
		return
	}

	var req model.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.UpdatePromotion(c.Request.Context(), id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Promotion updated successfully", res)
}

// ChangeStatus PATCH /api/v1/admin/promotions/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Promotion ID không hợp lệ")
		return
	}

	res, err := h.service.ChangeStatus(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Promotion status changed successfully", res)
}

// Delete DELETE /api/v1/admin/promotions/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Promotion ID không hợp lệ")
		return
	}

	if err := h.service.DeletePromotion(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Promotion deleted successfully", nil)
}
