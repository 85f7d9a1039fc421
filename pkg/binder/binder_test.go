package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name      string   `form:"name" json:"name" validate:"required,max=300"`
	Genres    []string `form:"genres" json:"genres,omitempty"`
	Website   string   `form:"website" json:"website,omitempty" validate:"omitempty,link"`
	StartTime string   `form:"start_time" json:"start_time,omitempty" validate:"omitempty,datetime_value"`
}

func bind(t *testing.T, contentType, body string) (*testPayload, error) {
	t.Helper()

	e := echo.New()
	b, err := New()
	require.NoError(t, err)
	e.Binder = b

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	c := e.NewContext(req, httptest.NewRecorder())

	payload := &testPayload{}
	return payload, b.Bind(payload, c)
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	payload, err := bind(t, echo.MIMEApplicationJSON, `{"name":"The Musical Hop","genres":["Jazz","Reggae"]}`)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", payload.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, payload.Genres)
}

func TestBindForm(t *testing.T) {
	t.Parallel()

	body := "name=The+Musical+Hop&genres=Jazz&genres=Reggae&website=https%3A%2F%2Fmusicalhop.com"
	payload, err := bind(t, echo.MIMEApplicationForm, body)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", payload.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, payload.Genres)
	assert.Equal(t, "https://musicalhop.com", payload.Website)
}

func TestBindRejectsUnknownJSONFields(t *testing.T) {
	t.Parallel()

	_, err := bind(t, echo.MIMEApplicationJSON, `{"name":"x","bogus":true}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.UnknownParameter("bogus"))
}

func TestBindRequiredField(t *testing.T) {
	t.Parallel()

	_, err := bind(t, echo.MIMEApplicationJSON, `{"genres":["Jazz"]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.ValidationError(`"name" is required`))
}

func TestBindInvalidLink(t *testing.T) {
	t.Parallel()

	_, err := bind(t, echo.MIMEApplicationJSON, `{"name":"x","website":"not a url"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.ValidationError(`"website" should be an absolute http(s) URL`))
}

func TestBindDatetimeFormats(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"2025-09-01 20:00:00", "2025-09-01T20:00", "2025-09-01T20:00:00Z"} {
		payload, err := bind(t, echo.MIMEApplicationJSON, `{"name":"x","start_time":"`+value+`"}`)
		require.NoError(t, err, value)
		assert.Equal(t, value, payload.StartTime)
	}

	_, err := bind(t, echo.MIMEApplicationJSON, `{"name":"x","start_time":"next tuesday"}`)
	require.Error(t, err)
}

func TestBindEmptyBody(t *testing.T) {
	t.Parallel()

	_, err := bind(t, echo.MIMEApplicationJSON, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.EmptyRequestBody())
}
