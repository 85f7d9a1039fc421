package venues

import (
	"github.com/labstack/echo/v4"
	"github.com/stagebook/stagebook/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers venue routes. Read routes are public; mutating
// routes require an authenticated session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		venueService: NewService(db),
	}

	g := e.Group("/venues")
	g.GET("", h.list)
	g.POST("/search", h.search)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create, authMiddleware.Authenticate)
	g.PATCH("/:id", h.update, authMiddleware.Authenticate)
	g.DELETE("/:id", h.deleteVenue, authMiddleware.Authenticate)
}
