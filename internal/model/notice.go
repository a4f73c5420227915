package model

import "time"

// NoticeCategory groups notices (e.g. "Examinations", "Placements").
type NoticeCategory struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Notice represents a department announcement.
type Notice struct {
	ID            int       `json:"id"`
	CategoryID    int       `json:"category_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
	IsPinned      bool      `json:"is_pinned"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// CategoryName is populated by joined list queries.
	CategoryName string `json:"category_name,omitempty"`
}
