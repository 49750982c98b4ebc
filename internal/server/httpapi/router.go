// Package httpapi exposes the auth and text services over HTTP JSON using
// gin.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reomoon/memo/internal/logging"
	"github.com/reomoon/memo/internal/server/models"
)

// AuthService is the session flow behind /api/auth.
type AuthService interface {
	AuthURL(redirect string) string
	Login(ctx context.Context, code string) (*models.Session, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// TextService is the AI text flow behind the generate/summarize/classify
// endpoints.
type TextService interface {
	GenerateTitle(ctx context.Context, body string) (string, error)
	Summarize(ctx context.Context, body string) (string, error)
	ClassifyCategory(ctx context.Context, text string) (string, error)
}

type handlers struct {
	auth   AuthService
	text   TextService
	logger logging.Logger
}

// NewRouter builds the gin engine with CORS, request logging, recovery and
// every route of the proxy.
func NewRouter(auth AuthService, text TextService, logger logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	h := &handlers{auth: auth, text: text, logger: logger}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), cors(), requestLogger(logger))

	router.GET("/healthz", h.health)

	api := router.Group("/api")
	{
		api.GET("/auth/github", h.authURL)
		api.POST("/auth/github/callback", h.callback)
		api.GET("/auth/user", h.user)
		api.POST("/auth/logout", h.logout)

		api.POST("/generateTitle", h.generateTitle)
		api.POST("/summarize", h.summarize)
		api.POST("/classifyCategory", h.classifyCategory)
	}

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
