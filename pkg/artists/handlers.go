package artists

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
	artistService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	artists, err := h.artistService.ListArtists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, artists))
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	params := SearchArtistsPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	matches, total, err := h.artistService.SearchArtists(ctx, params.SearchTerm)
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
		return errcodes.NotFound("Artist")
	}

	detail, err := h.artistService.ArtistDetail(ctx, id, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateArtistPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	artist := &models.Artist{
		Name:               params.Name,
		Genres:             models.GenreList(params.Genres),
		City:               params.City,
		State:              params.State,
		Phone:              params.Phone,
		Website:            params.Website,
		ImageLink:          params.ImageLink,
		FacebookLink:       params.FacebookLink,
		SeekingVenue:       seekingChecked(params.SeekingVenue),
		SeekingDescription: params.SeekingDescription,
	}

	if err := h.artistService.CreateArtist(ctx, artist); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, artist))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Artist")
	}

	params := UpdateArtistPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	artist, err := h.artistService.RetrieveArtist(ctx, RetrieveArtistOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	// Keep track of what's been changed
	opts := UpdateArtistOptions{Columns: []string{}}

	if params.Name != nil && *params.Name != artist.Name {
		artist.Name = *params.Name
		opts.Columns = append(opts.Columns, "name")
	}
	if params.Genres != nil {
		artist.Genres = models.GenreList(*params.Genres)
		opts.Columns = append(opts.Columns, "genres")
	}
	if params.City != nil && *params.City != artist.City {
		artist.City = *params.City
		opts.Columns = append(opts.Columns, "city")
	}
	if params.State != nil && *params.State != artist.State {
		artist.State = *params.State
		opts.Columns = append(opts.Columns, "state")
	}
	if params.Phone != nil && *params.Phone != artist.Phone {
		artist.Phone = *params.Phone
		opts.Columns = append(opts.Columns, "phone")
	}
	if params.Website != nil && *params.Website != artist.Website {
		artist.Website = *params.Website
		opts.Columns = append(opts.Columns, "website")
	}
	if params.ImageLink != nil && *params.ImageLink != artist.ImageLink {
		artist.ImageLink = *params.ImageLink
		opts.Columns = append(opts.Columns, "image_link")
	}
	if params.FacebookLink != nil && *params.FacebookLink != artist.FacebookLink {
		artist.FacebookLink = *params.FacebookLink
		opts.Columns = append(opts.Columns, "facebook_link")
	}
	if params.SeekingVenue != nil {
		if seeking := seekingChecked(*params.SeekingVenue); seeking != artist.SeekingVenue {
			artist.SeekingVenue = seeking
			opts.Columns = append(opts.Columns, "seeking_venue")
		}
	}
	if params.SeekingDescription != nil && *params.SeekingDescription != artist.SeekingDescription {
		artist.SeekingDescription = *params.SeekingDescription
		opts.Columns = append(opts.Columns, "seeking_description")
	}

	if err := h.artistService.UpdateArtist(ctx, artist, opts); err != nil {
		return errors.WithStack(err)
	}

	artist, err = h.artistService.RetrieveArtist(ctx, RetrieveArtistOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, artist))
}

func (h *handler) deleteArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Artist")
	}

	if _, err := h.artistService.RetrieveArtist(ctx, RetrieveArtistOptions{ID: &id}); err != nil {
		return errors.WithStack(err)
	}

	if err := h.artistService.DeleteArtist(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// seekingChecked coerces the form checkbox value into a boolean. Checked
// boxes arrive as the literal string "y".
func seekingChecked(value string) bool {
	return value == "y"
}
