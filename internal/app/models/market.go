package models

// Market defines a market listing based on the 'markets' table
type Market struct {
	ID          int64    `json:"id" db:"id" example:"1"`
	ImageLink   string   `json:"image_link" db:"image_link" example:"https://img.example.com/m.png"`
	Label       string   `json:"label" db:"label" example:"Saturday Farmers Market"`
	Description *string  `json:"description" db:"description"`
	Content     *string  `json:"content" db:"content"`
	Latitude    *float64 `json:"latitude" db:"latitude" example:"52.52"`
	Longitude   *float64 `json:"longitude" db:"longitude" example:"13.405"`
	WebsiteLink *string  `json:"website_link" db:"website_link"`
}
