package shows

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/migrations"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createArtist(t *testing.T, db *bun.DB, artist *models.Artist) *models.Artist {
	t.Helper()

	now := time.Now()
	artist.CreatedAt = now
	artist.UpdatedAt = now
	if artist.Genres == nil {
		artist.Genres = models.GenreList{}
	}
	_, err := db.NewInsert().Model(artist).Exec(context.Background())
	require.NoError(t, err)
	return artist
}

func createVenue(t *testing.T, db *bun.DB, venue *models.Venue) *models.Venue {
	t.Helper()

	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	if venue.Genres == nil {
		venue.Genres = models.GenreList{}
	}
	_, err := db.NewInsert().Model(venue).Exec(context.Background())
	require.NoError(t, err)
	return venue
}

func TestCreateShow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	artist := createArtist(t, db, &models.Artist{Name: "Guns N Petals"})
	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})

	show := &models.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateShow(ctx, show))
	assert.NotZero(t, show.ID)
}

func TestCreateShow_DanglingArtist(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})

	show := &models.Show{ArtistID: 9999, VenueID: venue.ID, StartTime: time.Now()}
	err := svc.CreateShow(ctx, show)
	assert.ErrorIs(t, err, errcodes.NotFound("Artist"))

	// Nothing was written.
	count, err := db.NewSelect().Model((*models.Show)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreateShow_DanglingVenue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	artist := createArtist(t, db, &models.Artist{Name: "Guns N Petals"})

	show := &models.Show{ArtistID: artist.ID, VenueID: 9999, StartTime: time.Now()}
	err := svc.CreateShow(ctx, show)
	assert.ErrorIs(t, err, errcodes.NotFound("Venue"))
}

func TestListShows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	artist := createArtist(t, db, &models.Artist{
		Name:      "Guns N Petals",
		ImageLink: "https://example.com/guns-n-petals.jpg",
	})
	venue := createVenue(t, db, &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})

	later := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.CreateShow(ctx, later))
	earlier := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.CreateShow(ctx, earlier))

	listed, err := svc.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Ordered by start time, not insertion order.
	assert.Equal(t, earlier.ID, listed[0].ID)
	assert.Equal(t, later.ID, listed[1].ID)

	assert.Equal(t, "The Musical Hop", listed[0].VenueName)
	assert.Equal(t, "Guns N Petals", listed[0].ArtistName)
	assert.Equal(t, "https://example.com/guns-n-petals.jpg", listed[0].ArtistImageLink)
	assert.Equal(t, "2026-09-01 20:00:00", listed[0].StartTime)
}

func TestListShows_Empty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	listed, err := svc.ListShows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
