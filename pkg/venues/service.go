package venues

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

type RetrieveVenueOptions struct {
	ID *int
}

type UpdateVenueOptions struct {
	Columns []string
}

// GroupVenue is one venue row inside a city/state group.
type GroupVenue struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueGroup is one (city, state) bucket of the grouped listing.
type VenueGroup struct {
	City   string        `json:"city"`
	State  string        `json:"state"`
	Venues []*GroupVenue `json:"venues"`
}

// ShowEntry is a show on a venue's detail page, enriched with the artist's
// name and image.
type ShowEntry struct {
	ID              int    `json:"id"`
	ArtistID        int    `json:"artist_id"`
	VenueID         int    `json:"venue_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetail is a venue plus its shows partitioned into past and upcoming
// relative to the time the detail was requested.
type VenueDetail struct {
	*models.Venue
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

func (svc *Service) CreateVenue(ctx context.Context, venue *models.Venue) error {
	now := time.Now()
	if venue.CreatedAt.IsZero() {
		venue.CreatedAt = now
	}
	venue.UpdatedAt = venue.CreatedAt
	if venue.Genres == nil {
		venue.Genres = models.GenreList{}
	}

	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(venue).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
}

func (svc *Service) RetrieveVenue(ctx context.Context, opts RetrieveVenueOptions) (*models.Venue, error) {
	venue := &models.Venue{}

	q := svc.db.
		NewSelect().
		Model(venue)

	if opts.ID != nil {
		q = q.Where("v.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Venue")
		}
		return nil, errors.WithStack(err)
	}

	return venue, nil
}

// ListVenuesGrouped returns every venue grouped by its (city, state) pair,
// groups ordered ascending by city then state, each venue carrying the count
// of its shows that start strictly after now.
func (svc *Service) ListVenuesGrouped(ctx context.Context, now time.Time) ([]*VenueGroup, error) {
	var venues []*models.Venue
	err := svc.db.
		NewSelect().
		Model(&venues).
		Order("v.city ASC").
		Order("v.state ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// One aggregate query for upcoming-show counts instead of a count query
	// per venue.
	var counts []struct {
		VenueID int `bun:"venue_id"`
		Count   int `bun:"count"`
	}
	err = svc.db.
		NewSelect().
		Model((*models.Show)(nil)).
		ColumnExpr("s.venue_id AS venue_id").
		ColumnExpr("COUNT(*) AS count").
		Where("s.start_time > ?", now).
		Group("s.venue_id").
		Scan(ctx, &counts)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	upcoming := make(map[int]int, len(counts))
	for _, c := range counts {
		upcoming[c.VenueID] = c.Count
	}

	groups := []*VenueGroup{}
	var current *VenueGroup
	for _, venue := range venues {
		if current == nil || current.City != venue.City || current.State != venue.State {
			current = &VenueGroup{
				City:   venue.City,
				State:  venue.State,
				Venues: []*GroupVenue{},
			}
			groups = append(groups, current)
		}
		current.Venues = append(current.Venues, &GroupVenue{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		})
	}

	return groups, nil
}

// SearchVenues performs a case-insensitive substring match against venue
// names and returns the full match set plus its count. An empty term matches
// every venue.
func (svc *Service) SearchVenues(ctx context.Context, term string) ([]*models.Venue, int, error) {
	var venues []*models.Venue

	total, err := svc.db.
		NewSelect().
		Model(&venues).
		Where(`LOWER(v.name) LIKE '%' || LOWER(?) || '%' ESCAPE '\'`, escapeLike(term)).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return venues, total, nil
}

// VenueDetail returns the venue with its shows partitioned on strict
// inequalities against now. A show starting exactly at now lands in neither
// bucket.
func (svc *Service) VenueDetail(ctx context.Context, id int, now time.Time) (*VenueDetail, error) {
	venue, err := svc.RetrieveVenue(ctx, RetrieveVenueOptions{ID: &id})
	if err != nil {
		return nil, err
	}

	var shows []*models.Show
	err = svc.db.
		NewSelect().
		Model(&shows).
		Relation("Artist").
		Where("s.venue_id = ?", id).
		Order("s.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	detail := &VenueDetail{
		Venue:         venue,
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
		if show.Artist != nil {
			entry.ArtistName = show.Artist.Name
			entry.ArtistImageLink = show.Artist.ImageLink
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

func (svc *Service) UpdateVenue(ctx context.Context, venue *models.Venue, opts UpdateVenueOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	venue.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(venue).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errcodes.NotFound("Venue")
		}
		return errors.WithStack(err)
	}
	return nil
}

// DeleteVenue deletes a venue and cascades to its shows in one transaction.
func (svc *Service) DeleteVenue(ctx context.Context, venueID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", venueID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", venueID).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// escapeLike escapes LIKE wildcards so a literal % or _ in a search term only
// matches itself.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
