package shows

type CreateShowPayload struct {
	ArtistID  int    `form:"artist_id" json:"artist_id" validate:"required,min=1"`
	VenueID   int    `form:"venue_id" json:"venue_id" validate:"required,min=1"`
	StartTime string `form:"start_time" json:"start_time" validate:"required,datetime_value"`
}
