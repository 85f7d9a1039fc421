package shows

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stagebook/stagebook/pkg/binder"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShowsTestContext(t *testing.T, method, path, contentType, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreate_FormEncoded(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{showService: NewService(db)}

	artist := createArtist(t, db, &models.Artist{Name: "Guns N Petals"})
	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})

	body := "artist_id=" + strconv.Itoa(artist.ID) + "&venue_id=" + strconv.Itoa(venue.ID) + "&start_time=2026-09-01+20%3A00%3A00"
	c, rr := newShowsTestContext(t, http.MethodPost, "/shows", echo.MIMEApplicationForm, body)

	require.NoError(t, h.create(c))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Show
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, artist.ID, created.ArtistID)
	assert.Equal(t, venue.ID, created.VenueID)
	assert.Equal(t, time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC), created.StartTime.UTC())
}

func TestHandlerCreate_BadStartTime(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{showService: NewService(db)}

	c, _ := newShowsTestContext(t, http.MethodPost, "/shows", echo.MIMEApplicationJSON, `{"artist_id":1,"venue_id":1,"start_time":"next tuesday"}`)

	err := h.create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.ValidationError(`"start_time" should be a datetime like YYYY-MM-DD HH:MM:SS`))
}

func TestHandlerCreate_DanglingVenue(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{showService: NewService(db)}

	artist := createArtist(t, db, &models.Artist{Name: "Guns N Petals"})

	c, _ := newShowsTestContext(t, http.MethodPost, "/shows", echo.MIMEApplicationJSON,
		`{"artist_id":`+strconv.Itoa(artist.ID)+`,"venue_id":9999,"start_time":"2026-09-01 20:00:00"}`)

	err := h.create(c)
	assert.ErrorIs(t, err, errcodes.NotFound("Venue"))
}

func TestHandlerList(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{showService: NewService(db)}

	artist := createArtist(t, db, &models.Artist{Name: "Guns N Petals"})
	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	show := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)}
	require.NoError(t, h.showService.CreateShow(context.Background(), show))

	c, rr := newShowsTestContext(t, http.MethodGet, "/shows", "", "")
	require.NoError(t, h.list(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var listed []*ListedShow
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "The Musical Hop", listed[0].VenueName)
	assert.Equal(t, "Guns N Petals", listed[0].ArtistName)
	assert.Equal(t, "2026-09-01 20:00:00", listed[0].StartTime)
}
