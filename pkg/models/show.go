package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StartTimeDisplayLayout is how show start times render in listing and detail
// pages, matching the directory's historical stringified timestamps.
const StartTimeDisplayLayout = "2006-01-02 15:04:05"

// Show is a pure join entity scheduling an artist at a venue. It has no
// lifecycle beyond its two foreign keys.
type Show struct {
	bun.BaseModel `bun:"table:shows,alias:s"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	ArtistID  int       `bun:",nullzero" json:"artist_id"`
	VenueID   int       `bun:",nullzero" json:"venue_id"`
	StartTime time.Time `bun:",notnull" json:"start_time"`

	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id" json:"artist,omitempty"`
	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id" json:"venue,omitempty"`
}

// StartTimeDisplay renders the start time as a display string.
func (s *Show) StartTimeDisplay() string {
	return s.StartTime.Format(StartTimeDisplayLayout)
}
