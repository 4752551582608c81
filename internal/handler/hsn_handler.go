package handler

import (
	"github.com/gin-gonic/gin"

	"customsduty/internal/service"
)

// HSNHandler handles HSN master search endpoints.
type HSNHandler struct {
	hsnService service.HSNService
}

// NewHSNHandler creates a new HSNHandler.
func NewHSNHandler(hsnService service.HSNService) *HSNHandler {
	return &HSNHandler{hsnService: hsnService}
}

// Search handles GET /api/v1/hsn/search
// @Summary Search HSN master codes
// @Description Return the head code with its description and GST rate followed by its sub-codes.
// @Tags hsn
// @Produce json
// @Param code query string true "2 to 8 digit HSN code"
// @Success 200 {object} Response{data=[]domain.HSNCode} "Matching codes"
// @Failure 400 {object} ErrorResponseBody "Invalid code"
// @Failure 502 {object} ErrorResponseBody "Upstream unavailable"
// @Router /hsn/search [get]
func (h *HSNHandler) Search(c *gin.Context) {
	rows, err := h.hsnService.Search(c.Request.Context(), c.Query("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}
