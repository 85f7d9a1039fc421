package venues

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/models"
)

type handler struct {
	venueService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	groups, err := h.venueService.ListVenuesGrouped(ctx, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, groups))
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	params := SearchVenuesPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	matches, total, err := h.venueService.SearchVenues(ctx, params.SearchTerm)
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]interface{}{
		"count": total,
		"data":  matches,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Venue")
	}

	detail, err := h.venueService.VenueDetail(ctx, id, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateVenuePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	venue := &models.Venue{
		Name:               params.Name,
		Genres:             models.GenreList(params.Genres),
		Address:            params.Address,
		City:               params.City,
		State:              params.State,
		Phone:              params.Phone,
		Website:            params.Website,
		ImageLink:          params.ImageLink,
		FacebookLink:       params.FacebookLink,
		SeekingTalent:      seekingChecked(params.SeekingTalent),
		SeekingDescription: params.SeekingDescription,
	}

	if err := h.venueService.CreateVenue(ctx, venue); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, venue))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Venue")
	}

	params := UpdateVenuePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	venue, err := h.venueService.RetrieveVenue(ctx, RetrieveVenueOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	// Keep track of what's been changed
	opts := UpdateVenueOptions{Columns: []string{}}

	if params.Name != nil && *params.Name != venue.Name {
		venue.Name = *params.Name
		opts.Columns = append(opts.Columns, "name")
	}
	if params.Genres != nil {
		venue.Genres = models.GenreList(*params.Genres)
		opts.Columns = append(opts.Columns, "genres")
	}
	if params.Address != nil && *params.Address != venue.Address {
		venue.Address = *params.Address
		opts.Columns = append(opts.Columns, "address")
	}
	if params.City != nil && *params.City != venue.City {
		venue.City = *params.City
		opts.Columns = append(opts.Columns, "city")
	}
	if params.State != nil && *params.State != venue.State {
		venue.State = *params.State
		opts.Columns = append(opts.Columns, "state")
	}
	if params.Phone != nil && *params.Phone != venue.Phone {
		venue.Phone = *params.Phone
		opts.Columns = append(opts.Columns, "phone")
	}
	if params.Website != nil && *params.Website != venue.Website {
		venue.Website = *params.Website
		opts.Columns = append(opts.Columns, "website")
	}
	if params.ImageLink != nil && *params.ImageLink != venue.ImageLink {
		venue.ImageLink = *params.ImageLink
		opts.Columns = append(opts.Columns, "image_link")
	}
	if params.FacebookLink != nil && *params.FacebookLink != venue.FacebookLink {
		venue.FacebookLink = *params.FacebookLink
		opts.Columns = append(opts.Columns, "facebook_link")
	}
	if params.SeekingTalent != nil {
		if seeking := seekingChecked(*params.SeekingTalent); seeking != venue.SeekingTalent {
			venue.SeekingTalent = seeking
			opts.Columns = append(opts.Columns, "seeking_talent")
		}
	}
	if params.SeekingDescription != nil && *params.SeekingDescription != venue.SeekingDescription {
		venue.SeekingDescription = *params.SeekingDescription
		opts.Columns = append(opts.Columns, "seeking_description")
	}

	if err := h.venueService.UpdateVenue(ctx, venue, opts); err != nil {
		return errors.WithStack(err)
	}

	venue, err = h.venueService.RetrieveVenue(ctx, RetrieveVenueOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, venue))
}

func (h *handler) deleteVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Venue")
	}

	// Confirm the venue exists so a bad id gets a 404 instead of a silent
	// no-op delete.
	if _, err := h.venueService.RetrieveVenue(ctx, RetrieveVenueOptions{ID: &id}); err != nil {
		return errors.WithStack(err)
	}

	if err := h.venueService.DeleteVenue(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// seekingChecked coerces the form checkbox value into a boolean. Checked
// boxes arrive as the literal string "y"; anything else, including absent,
// means false.
func seekingChecked(value string) bool {
	return value == "y"
}
