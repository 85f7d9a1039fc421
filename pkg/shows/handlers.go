package shows

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/binder"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/models"
)

type handler struct {
	showService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	shows, err := h.showService.ListShows(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, shows))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateShowPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	startTime, ok := binder.ParseDatetime(params.StartTime)
	if !ok {
		return errcodes.ValidationError(`"start_time" should be a datetime`)
	}

	show := &models.Show{
		ArtistID:  params.ArtistID,
		VenueID:   params.VenueID,
		StartTime: startTime,
	}

	if err := h.showService.CreateShow(ctx, show); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, show))
}
