package repository

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BatchRepository handles batch data access.
type BatchRepository struct {
	pool *pgxpool.Pool
}

// NewBatchRepository creates a new BatchRepository.
func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

// GetByID retrieves a batch by its ID.
func (r *BatchRepository) GetByID(ctx context.Context, id int) (*model.Batch, error) {
	b := &model.Batch{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, start_year, end_year, created_at, updated_at
		 FROM batches WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.StartYear, &b.EndYear, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List retrieves all batches, most recent cohort first.
func (r *BatchRepository) List(ctx context.Context) ([]model.Batch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, start_year, end_year, created_at, updated_at
		 FROM batches ORDER BY start_year DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []model.Batch
	for rows.Next() {
		var b model.Batch
		if err := rows.Scan(&b.ID, &b.Name, &b.StartYear, &b.EndYear, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// Create inserts a new batch.
func (r *BatchRepository) Create(ctx context.Context, b *model.Batch) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO batches (name, start_year, end_year)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		b.Name, b.StartYear, b.EndYear,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update modifies an existing batch.
func (r *BatchRepository) Update(ctx context.Context, b *model.Batch) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE batches SET name = $1, start_year = $2, end_year = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		b.Name, b.StartYear, b.EndYear, b.ID,
	)
	return err
}

// Delete removes a batch. Sections, notes, and papers underneath it are
// removed by ON DELETE CASCADE.
func (r *BatchRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	return err
}

// SectionIDs lists the IDs of a batch's sections.
func (r *BatchRepository) SectionIDs(ctx context.Context, batchID int) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM sections WHERE batch_id = $1`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
