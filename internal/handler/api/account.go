package api

import (
	"net/http"

	reqdto "daycare-waitlist/internal/handler/dto/request"
	resdto "daycare-waitlist/internal/handler/dto/response"
	"daycare-waitlist/internal/handler/httperr"
	"daycare-waitlist/internal/handler/middleware"
	"daycare-waitlist/internal/pkg/config"
	"daycare-waitlist/internal/pkg/cookie"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/pkg/jwt"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoAccountInContext = errs.New("account missing from request context")

type AccountHandler struct {
	cmds       commands.AccountCommands
	q          queries.AccountQueries
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAccountHandler(cmds commands.AccountCommands, q queries.AccountQueries, jwtService *jwt.Service, cfg config.Config) *AccountHandler {
	return &AccountHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Register client
// @Description Register a parent/guardian account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Register client request"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/clients [post]
func (h *AccountHandler) RegisterClient(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.RegisterClient(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromAccountView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary Register provider
// @Description Register a daycare provider account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterProviderRequest true "Register provider request"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/providers [post]
func (h *AccountHandler) RegisterProvider(c *gin.Context) {
	var req reqdto.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.RegisterProvider(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromAccountView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary Login
// @Description Login as a client or provider; the token is returned and set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromLoginResult(result)
	if err == nil {
		cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())
	}
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AccountHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current account
// @Description Get the account the access token was issued for
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	kind, kindOK := middleware.GetAccountKind(c)
	if !ok || !kindOK {
		// RequireAuth must run first
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAccountInContext, "Internal server error", nil)
		return
	}
	view, err := h.q.GetAccount(c.Request.Context(), accountID, kind)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromAccountView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Get client
// @Description Client profile with the children still on the waitlist and their positions
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id} [get]
func (h *AccountHandler) GetClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetClient(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromClientView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Get provider
// @Description Provider profile with its declared placements
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} resdto.ProviderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/providers/{id} [get]
func (h *AccountHandler) GetProvider(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetProvider(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromProviderView(view)
	writeJSON(c, http.StatusOK, res, err)
}
