package artists

import (
	"github.com/labstack/echo/v4"
	"github.com/stagebook/stagebook/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers artist routes. Read routes are public; mutating
// routes require an authenticated session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		artistService: NewService(db),
	}

	g := e.Group("/artists")
	g.GET("", h.list)
	g.POST("/search", h.search)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create, authMiddleware.Authenticate)
	g.PATCH("/:id", h.update, authMiddleware.Authenticate)
	g.DELETE("/:id", h.deleteArtist, authMiddleware.Authenticate)
}
