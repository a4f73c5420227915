package model

import "time"

// Note represents shared lecture notes, linked out to a drive folder.
type Note struct {
	ID          int       `json:"id"`
	SectionID   int       `json:"section_id"`
	Title       string    `json:"title"`
	DriveLink   string    `json:"drive_link"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Section (with its batch) is populated by joined list queries.
	Section *Section `json:"section,omitempty"`
}

// Paper represents a past exam paper, linked out to a drive folder.
type Paper struct {
	ID        int       `json:"id"`
	SectionID int       `json:"section_id"`
	Title     string    `json:"title"`
	DriveLink string    `json:"drive_link"`
	ExamType  string    `json:"exam_type"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Section *Section `json:"section,omitempty"`
}
