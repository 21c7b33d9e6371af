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

type OfferHandler struct {
	cmds     commands.OfferCommands
	q        queries.OfferQueries
	matching queries.MatchingQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries, matching queries.MatchingQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q, matching: matching}
}

// @Summary Rank candidates
// @Description Waitlisted children a provider can place, best match first
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} resdto.CandidateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/providers/{id}/candidates [get]
func (h *OfferHandler) Candidates(c *gin.Context) {
	providerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.matching.RankCandidates(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromCandidateViews(views)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Create offer
// @Description Offer a placement to a waitlisted child
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOfferRequest true "Create offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateOffer(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromOfferView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary List offers
// @Description Offers in creation order, optionally filtered
// @Tags offers
// @Produce json
// @Param providerId query string false "Provider ID"
// @Param childId query string false "Child ID"
// @Param status query string false "pending, accepted or declined"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromOfferViews(views)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Respond to offer
// @Description Accept or decline a pending offer. Accepting removes the child from the waitlist and consumes one spot.
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body reqdto.RespondToOfferRequest true "Decision"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/offers/{id} [patch]
func (h *OfferHandler) Respond(c *gin.Context) {
	offerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RespondToOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	decision, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Decision must be accept or decline", nil)
		return
	}
	view, err := h.cmds.RespondToOffer(c.Request.Context(), offerID, decision)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromOfferView(view)
	writeJSON(c, http.StatusOK, res, err)
}
