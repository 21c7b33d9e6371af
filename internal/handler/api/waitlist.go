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

type WaitlistHandler struct {
	cmds commands.WaitlistCommands
	q    queries.WaitlistQueries
}

func NewWaitlistHandler(cmds commands.WaitlistCommands, q queries.WaitlistQueries) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds, q: q}
}

// @Summary Enroll child
// @Description Append a child to the end of the waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.EnrollRequest true "Enroll request"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/waitlist [post]
func (h *WaitlistHandler) Enroll(c *gin.Context) {
	var req reqdto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Enroll(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromEntryView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary List waitlist
// @Description All waiting children in FIFO order
// @Tags waitlist
// @Produce json
// @Success 200 {array} resdto.EntryResponse
// @Router /api/waitlist [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromEntryViews(views)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Waitlist position
// @Description 1-based FIFO rank of a child, null once the child has left the waitlist
// @Tags waitlist
// @Produce json
// @Param id path string true "Child (waitlist entry) ID"
// @Success 200 {object} resdto.PositionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/waitlist/{id}/position [get]
func (h *WaitlistHandler) Position(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pos, err := h.q.PositionOf(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PositionResponse{Position: pos})
}
