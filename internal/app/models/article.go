package models

import "time"

// Article defines a post based on the 'articles' table
type Article struct {
	PostID    int64     `json:"post_id" db:"post_id" example:"1"`
	UserID    int64     `json:"user_id" db:"user_id" example:"1"`
	MarketID  *int64    `json:"market_id" db:"market_id" example:"2"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined columns, filled by reads only
	Username    string  `json:"username,omitempty" db:"username"`
	MarketLabel *string `json:"market_label,omitempty" db:"market_label"`
}
