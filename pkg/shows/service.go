package shows

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/uptrace/bun"
)

// ListedShow is one row of the show listing, denormalized with the venue and
// artist names it joins.
type ListedShow struct {
	ID              int    `json:"id"`
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateShow inserts a show after confirming both referenced records exist,
// all inside one transaction. A dangling reference fails the whole operation.
func (svc *Service) CreateShow(ctx context.Context, show *models.Show) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Artist)(nil)).
			Where("id = ?", show.ArtistID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Artist")
		}

		exists, err = tx.NewSelect().
			Model((*models.Venue)(nil)).
			Where("id = ?", show.VenueID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Venue")
		}

		_, err = tx.NewInsert().
			Model(show).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// ListShows returns every show ordered by start time, each row joined with
// its venue and artist.
func (svc *Service) ListShows(ctx context.Context) ([]*ListedShow, error) {
	var shows []*models.Show
	err := svc.db.
		NewSelect().
		Model(&shows).
		Relation("Artist").
		Relation("Venue").
		Order("s.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	listed := []*ListedShow{}
	for _, show := range shows {
		row := &ListedShow{
			ID:        show.ID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTimeDisplay(),
		}
		if show.Venue != nil {
			row.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			row.ArtistName = show.Artist.Name
			row.ArtistImageLink = show.Artist.ImageLink
		}
		listed = append(listed, row)
	}
	return listed, nil
}
