package artists

type SearchArtistsPayload struct {
	SearchTerm string `form:"search_term" json:"search_term,omitempty" validate:"omitempty,max=100"`
}

type CreateArtistPayload struct {
	Name               string   `form:"name" json:"name" validate:"required,max=300"`
	Genres             []string `form:"genres" json:"genres,omitempty"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone,omitempty" validate:"omitempty,max=40"`
	Website            string   `form:"website" json:"website,omitempty" validate:"omitempty,link"`
	ImageLink          string   `form:"image_link" json:"image_link,omitempty" validate:"omitempty,link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link,omitempty" validate:"omitempty,link"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue,omitempty"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description,omitempty" validate:"omitempty,max=500"`
}

type UpdateArtistPayload struct {
	Name               *string   `form:"name" json:"name,omitempty" validate:"omitempty,max=300"`
	Genres             *[]string `form:"genres" json:"genres,omitempty"`
	City               *string   `form:"city" json:"city,omitempty" validate:"omitempty,max=120"`
	State              *string   `form:"state" json:"state,omitempty" validate:"omitempty,max=120"`
	Phone              *string   `form:"phone" json:"phone,omitempty" validate:"omitempty,max=40"`
	Website            *string   `form:"website" json:"website,omitempty" validate:"omitempty,link"`
	ImageLink          *string   `form:"image_link" json:"image_link,omitempty" validate:"omitempty,link"`
	FacebookLink       *string   `form:"facebook_link" json:"facebook_link,omitempty" validate:"omitempty,link"`
	SeekingVenue       *string   `form:"seeking_venue" json:"seeking_venue,omitempty"`
	SeekingDescription *string   `form:"seeking_description" json:"seeking_description,omitempty" validate:"omitempty,max=500"`
}
