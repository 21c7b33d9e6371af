package api_test

import (
	"daycare-waitlist/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
