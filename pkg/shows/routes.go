package shows

import (
	"github.com/labstack/echo/v4"
	"github.com/stagebook/stagebook/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers show routes. The listing is public; booking a
// show requires an authenticated session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		showService: NewService(db),
	}

	g := e.Group("/shows")
	g.GET("", h.list)
	g.POST("", h.create, authMiddleware.Authenticate)
}
