package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:a"`

	ID                 int       `bun:",pk,nullzero" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Name               string    `bun:",nullzero" json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Website            string    `json:"website"`
	Genres             GenreList `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	SeekingVenue       bool      `bun:",notnull" json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=artist_id" json:"shows,omitempty"`
}
