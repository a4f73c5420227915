package repository

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SectionRepository handles section data access.
type SectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

// GetByID retrieves a section with its batch.
func (r *SectionRepository) GetByID(ctx context.Context, id int) (*model.Section, error) {
	s := &model.Section{Batch: &model.Batch{}}
	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.batch_id, s.name, s.created_at, s.updated_at,
		        b.id, b.name, b.start_year, b.end_year, b.created_at, b.updated_at
		 FROM sections s JOIN batches b ON b.id = s.batch_id
		 WHERE s.id = $1`, id,
	).Scan(&s.ID, &s.BatchID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
		&s.Batch.ID, &s.Batch.Name, &s.Batch.StartYear, &s.Batch.EndYear, &s.Batch.CreatedAt, &s.Batch.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all sections joined with their batches. batchID 0 lists
// sections across every batch.
func (r *SectionRepository) List(ctx context.Context, batchID int) ([]model.Section, error) {
	query := `SELECT s.id, s.batch_id, s.name, s.created_at, s.updated_at,
	                 b.id, b.name, b.start_year, b.end_year, b.created_at, b.updated_at
	          FROM sections s JOIN batches b ON b.id = s.batch_id
	          WHERE ($1 = 0 OR s.batch_id = $1)
	          ORDER BY b.start_year DESC, s.name`
	rows, err := r.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		s := model.Section{Batch: &model.Batch{}}
		if err := rows.Scan(&s.ID, &s.BatchID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
			&s.Batch.ID, &s.Batch.Name, &s.Batch.StartYear, &s.Batch.EndYear, &s.Batch.CreatedAt, &s.Batch.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, s *model.Section) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sections (batch_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		s.BatchID, s.Name,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing section.
func (r *SectionRepository) Update(ctx context.Context, s *model.Section) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sections SET batch_id = $1, name = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		s.BatchID, s.Name, s.ID,
	)
	return err
}

// Delete removes a section. Notes and papers underneath it cascade.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	return err
}
