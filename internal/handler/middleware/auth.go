package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/handler/httperr"
	"daycare-waitlist/internal/pkg/cookie"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAccountIDKey   = "account_id"
	ctxAccountKindKey = "account_kind"
	ctxClaimsKey      = "jwt_claims"
)

var (
	errTokenMissing = errs.Mark(errs.New("access token missing"), errs.ErrUnauthorized)
	errTokenInvalid = errs.Mark(errs.New("access token rejected"), errs.ErrUnauthorized)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		accountID, kind, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(errTokenInvalid, err.Error()), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAccountIDKey, accountID)
		c.Set(ctxAccountKindKey, kind)
		c.Set(ctxClaimsKey, map[string]any{
			"account_id": accountID.String(),
			"kind":       kind.String(),
		})
		c.Next()
	}
}

// cookie first, then the bearer header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetAccountKind(c *gin.Context) (account.Kind, bool) {
	v, exists := c.Get(ctxAccountKindKey)
	if !exists {
		return "", false
	}

	kind, ok := v.(account.Kind)
	return kind, ok
}
