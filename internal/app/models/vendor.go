package models

// Vendor defines a vendor listing based on the 'vendors' table.
// Markets holds ids of markets the vendor attends; they are not foreign keys.
type Vendor struct {
	ID          int64    `json:"id" db:"id" example:"1"`
	ImageLink   string   `json:"image_link" db:"image_link"`
	Name        string   `json:"name" db:"name" example:"Green Acres"`
	Category    *string  `json:"category" db:"category"`
	Location    *string  `json:"location" db:"location"`
	Contact     *string  `json:"contact" db:"contact"`
	Email       *string  `json:"email" db:"email"`
	Website     *string  `json:"website" db:"website"`
	Markets     []int64  `json:"markets" db:"markets"`
	Products    []string `json:"products" db:"products"`
	Description *string  `json:"description" db:"description"`
	Content     *string  `json:"content" db:"content"`
}
