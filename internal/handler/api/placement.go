package api

import (
	"net/http"

	reqdto "daycare-waitlist/internal/handler/dto/request"
	resdto "daycare-waitlist/internal/handler/dto/response"
	"daycare-waitlist/internal/handler/httperr"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlacementHandler struct {
	cmds commands.PlacementCommands
	q    queries.PlacementQueries
}

func NewPlacementHandler(cmds commands.PlacementCommands, q queries.PlacementQueries) *PlacementHandler {
	return &PlacementHandler{cmds: cmds, q: q}
}

// @Summary Declare capacity
// @Description A provider declares open spots for an inclusive age range
// @Tags placements
// @Accept json
// @Produce json
// @Param request body reqdto.DeclareCapacityRequest true "Declare capacity request"
// @Success 201 {object} resdto.PlacementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/placements [post]
func (h *PlacementHandler) Declare(c *gin.Context) {
	var req reqdto.DeclareCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.DeclareCapacity(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPlacementView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary List placements
// @Description All placements, optionally for one provider
// @Tags placements
// @Produce json
// @Param providerId query string false "Provider ID"
// @Success 200 {array} resdto.PlacementResponse
// @Failure 400 {object} httperr.Response
// @Router /api/placements [get]
func (h *PlacementHandler) List(c *gin.Context) {
	var query reqdto.ListPlacementsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	providerID, err := query.ProviderFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid providerId", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPlacementViews(views)
	writeJSON(c, http.StatusOK, res, err)
}
