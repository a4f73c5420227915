package model

import "time"

// GalleryCategory groups gallery images (e.g. "Tech Fest 2024").
type GalleryCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GalleryImage represents a single hosted image within a category.
type GalleryImage struct {
	ID         int       `json:"id"`
	CategoryID int       `json:"category_id"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}
