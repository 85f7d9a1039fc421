package venues

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

func newVenuesTestContext(t *testing.T, method, path, contentType, payload string) (echo.Context, *httptest.ResponseRecorder) {
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
	h := &handler{venueService: NewService(db)}

	body := "name=The+Musical+Hop&city=San+Francisco&state=CA&address=1015+Folsom+Street" +
		"&genres=Jazz&genres=Reggae&genres=Swing&seeking_talent=y&seeking_description=Looking+for+jazz+acts"
	c, rr := newVenuesTestContext(t, http.MethodPost, "/venues", echo.MIMEApplicationForm, body)

	require.NoError(t, h.create(c))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Venue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "The Musical Hop", created.Name)
	assert.Equal(t, models.GenreList{"Jazz", "Reggae", "Swing"}, created.Genres)
	assert.True(t, created.SeekingTalent)
	assert.Equal(t, "Looking for jazz acts", created.SeekingDescription)
}

func TestHandlerCreate_SeekingTalentUncheckedWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{venueService: NewService(db)}

	body := "name=Park+Square+Live+Music+%26+Coffee&city=San+Francisco&state=CA"
	c, rr := newVenuesTestContext(t, http.MethodPost, "/venues", echo.MIMEApplicationForm, body)

	require.NoError(t, h.create(c))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Venue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.False(t, created.SeekingTalent)
}

func TestHandlerCreate_MissingNameFails(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{venueService: NewService(db)}

	c, _ := newVenuesTestContext(t, http.MethodPost, "/venues", echo.MIMEApplicationJSON, `{"city":"Austin","state":"TX"}`)

	err := h.create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.ValidationError(`"name" is required`))
}

func TestHandlerSearch(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{venueService: NewService(db)}

	createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	createVenue(t, db, &models.Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})

	c, rr := newVenuesTestContext(t, http.MethodPost, "/venues/search", echo.MIMEApplicationForm, "search_term=hop")

	require.NoError(t, h.search(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Count int             `json:"count"`
		Data  []*models.Venue `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "The Musical Hop", response.Data[0].Name)
}

func TestHandlerUpdate_PartialPatch(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{venueService: NewService(db)}

	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Phone: "123-123-1234"})

	c, rr := newVenuesTestContext(t, http.MethodPatch, "/venues/"+strconv.Itoa(venue.ID), echo.MIMEApplicationJSON, `{"name":"The Musical Hop II"}`)
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(venue.ID))

	require.NoError(t, h.update(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated models.Venue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "The Musical Hop II", updated.Name)
	assert.Equal(t, "123-123-1234", updated.Phone)
}

func TestHandlerDelete(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{venueService: NewService(db)}
	ctx := context.Background()

	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	artist := createArtist(t, db, &models.Artist{Name: "Guns N Petals"})
	createShow(t, db, &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now().Add(time.Hour)})

	c, rr := newVenuesTestContext(t, http.MethodDelete, "/venues/"+strconv.Itoa(venue.ID), "", "")
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(venue.ID))

	require.NoError(t, h.deleteVenue(c))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	count, err := db.NewSelect().Model((*models.Show)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestHandlerDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	h := &handler{venueService: NewService(db)}

	c, _ := newVenuesTestContext(t, http.MethodDelete, "/venues/9999", "", "")
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("9999")

	err := h.deleteVenue(c)
	assert.ErrorIs(t, err, errcodes.NotFound("Venue"))
}
