package artists

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/uptrace/bun"
)

type RetrieveArtistOptions struct {
	ID *int
}

type UpdateArtistOptions struct {
	Columns []string
}

// ListedArtist is one row of the flat artist listing.
type ListedArtist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShowEntry is a show on an artist's detail page, enriched with the venue's
// name and image.
type ShowEntry struct {
	ID             int    `json:"id"`
	ArtistID       int    `json:"artist_id"`
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetail is an artist plus their shows partitioned into past and
// upcoming relative to the time the detail was requested.
type ArtistDetail struct {
	*models.Artist
	PastShows          []*ShowEntry `json:"past_shows"`
	UpcomingShows      []*ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateArtist(ctx context.Context, artist *models.Artist) error {
	now := time.Now()
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = now
	}
	artist.UpdatedAt = artist.CreatedAt
	if artist.Genres == nil {
		artist.Genres = models.GenreList{}
	}

	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(artist).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
}

func (svc *Service) RetrieveArtist(ctx context.Context, opts RetrieveArtistOptions) (*models.Artist, error) {
	artist := &models.Artist{}

	q := svc.db.
		NewSelect().
		Model(artist)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Artist")
		}
		return nil, errors.WithStack(err)
	}

	return artist, nil
}

// ListArtists returns every artist as a flat id/name listing ordered by id.
func (svc *Service) ListArtists(ctx context.Context) ([]*ListedArtist, error) {
	var artists []*models.Artist
	err := svc.db.
		NewSelect().
		Model(&artists).
		Column("a.id", "a.name").
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	listed := []*ListedArtist{}
	for _, artist := range artists {
		listed = append(listed, &ListedArtist{ID: artist.ID, Name: artist.Name})
	}
	return listed, nil
}

// SearchArtists performs a case-insensitive substring match against artist
// names and returns the full match set plus its count. An empty term matches
// every artist.
func (svc *Service) SearchArtists(ctx context.Context, term string) ([]*models.Artist, int, error) {
	var artists []*models.Artist

	total, err := svc.db.
		NewSelect().
		Model(&artists).
		Where(`LOWER(a.name) LIKE '%' || LOWER(?) || '%' ESCAPE '\'`, escapeLike(term)).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return artists, total, nil
}

// ArtistDetail returns the artist with their shows partitioned on strict
// inequalities against now. A show starting exactly at now lands in neither
// bucket.
func (svc *Service) ArtistDetail(ctx context.Context, id int, now time.Time) (*ArtistDetail, error) {
	artist, err := svc.RetrieveArtist(ctx, RetrieveArtistOptions{ID: &id})
	if err != nil {
		return nil, err
	}

	var shows []*models.Show
	err = svc.db.
		NewSelect().
		Model(&shows).
		Relation("Venue").
		Where("s.artist_id = ?", id).
		Order("s.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	detail := &ArtistDetail{
		Artist:        artist,
		PastShows:     []*ShowEntry{},
		UpcomingShows: []*ShowEntry{},
	}
	for _, show := range shows {
		entry := &ShowEntry{
			ID:        show.ID,
			ArtistID:  show.ArtistID,
			VenueID:   show.VenueID,
			StartTime: show.StartTimeDisplay(),
		}
		if show.Venue != nil {
			entry.VenueName = show.Venue.Name
			entry.VenueImageLink = show.Venue.ImageLink
		}
		switch {
		case show.StartTime.Before(now):
			detail.PastShows = append(detail.PastShows, entry)
		case show.StartTime.After(now):
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

func (svc *Service) UpdateArtist(ctx context.Context, artist *models.Artist, opts UpdateArtistOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	artist.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(artist).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errcodes.NotFound("Artist")
		}
		return errors.WithStack(err)
	}
	return nil
}

// DeleteArtist deletes an artist and cascades to their shows in one
// transaction.
func (svc *Service) DeleteArtist(ctx context.Context, artistID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("artist_id = ?", artistID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Artist)(nil)).
			Where("id = ?", artistID).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
