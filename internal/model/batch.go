package model

import "time"

// Batch represents an admission-year cohort (e.g. "2023-2027").
type Batch struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartYear int       `json:"start_year"`
	EndYear   int       `json:"end_year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section represents a class section within a batch.
type Section struct {
	ID        int       `json:"id"`
	BatchID   int       `json:"batch_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Batch is populated by joined list queries.
	Batch *Batch `json:"batch,omitempty"`
}
