package api

import (
	"net/http"

	resdto "daycare-waitlist/internal/handler/dto/response"
	"daycare-waitlist/internal/handler/httperr"
	"daycare-waitlist/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.StatsQueries
}

func NewAdminHandler(q queries.StatsQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary Statistics
// @Description Store-wide counts taken from one snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromStatsView(view)
	writeJSON(c, http.StatusOK, res, err)
}
