package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/domains/ranking/service"
	"ecommerce-backend/internal/shared/response"
	"ecommerce-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListRankings GET /api/v1/rankings
func (h *Handler) ListRankings(c *gin.Context) {
	rankings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get rankings successfully", rankings)
}

// GetRanking GET /api/v1/rankings/:id
func (h *Handler) GetRanking(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.BadRequest(c, "Ranking ID không hợp lệ")
		return
	}

	ranking, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get ranking successfully", ranking)
}

// GetRankingByName GET /api/v1/rankings/name/:name
func (h *Handler) GetRankingByName(c *gin.Context) {
	ranking, err := h.service.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Get ranking successfully", ranking)
}
