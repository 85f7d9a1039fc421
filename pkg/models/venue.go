package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:v"`

	ID                 int       `bun:",pk,nullzero" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Name               string    `bun:",nullzero" json:"name"`
	Genres             GenreList `json:"genres"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Website            string    `json:"website"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	SeekingTalent      bool      `bun:",notnull" json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id" json:"shows,omitempty"`
}
