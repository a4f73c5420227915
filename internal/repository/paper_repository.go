package repository

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaperRepository handles exam paper data access.
type PaperRepository struct {
	pool *pgxpool.Pool
}

// NewPaperRepository creates a new PaperRepository.
func NewPaperRepository(pool *pgxpool.Pool) *PaperRepository {
	return &PaperRepository{pool: pool}
}

const paperSelect = `
	SELECT p.id, p.section_id, p.title, p.drive_link, p.exam_type, p.year, p.created_at, p.updated_at,
	       s.id, s.batch_id, s.name, s.created_at, s.updated_at,
	       b.id, b.name, b.start_year, b.end_year, b.created_at, b.updated_at
	FROM papers p
	JOIN sections s ON s.id = p.section_id
	JOIN batches b ON b.id = s.batch_id`

func scanPaper(row interface{ Scan(...any) error }) (model.Paper, error) {
	p := model.Paper{Section: &model.Section{Batch: &model.Batch{}}}
	err := row.Scan(&p.ID, &p.SectionID, &p.Title, &p.DriveLink, &p.ExamType, &p.Year, &p.CreatedAt, &p.UpdatedAt,
		&p.Section.ID, &p.Section.BatchID, &p.Section.Name, &p.Section.CreatedAt, &p.Section.UpdatedAt,
		&p.Section.Batch.ID, &p.Section.Batch.Name, &p.Section.Batch.StartYear, &p.Section.Batch.EndYear,
		&p.Section.Batch.CreatedAt, &p.Section.Batch.UpdatedAt)
	return p, err
}

// GetByID retrieves a paper with its section and batch resolved.
func (r *PaperRepository) GetByID(ctx context.Context, id int) (*model.Paper, error) {
	p, err := scanPaper(r.pool.QueryRow(ctx, paperSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves papers joined with section→batch. sectionID 0 lists all.
func (r *PaperRepository) List(ctx context.Context, sectionID int) ([]model.Paper, error) {
	rows, err := r.pool.Query(ctx,
		paperSelect+` WHERE ($1 = 0 OR p.section_id = $1) ORDER BY p.year DESC, p.created_at DESC`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []model.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// Create inserts a new paper.
func (r *PaperRepository) Create(ctx context.Context, p *model.Paper) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO papers (section_id, title, drive_link, exam_type, year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.SectionID, p.Title, p.DriveLink, p.ExamType, p.Year,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update modifies an existing paper.
func (r *PaperRepository) Update(ctx context.Context, p *model.Paper) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE papers SET section_id = $1, title = $2, drive_link = $3, exam_type = $4, year = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		p.SectionID, p.Title, p.DriveLink, p.ExamType, p.Year, p.ID,
	)
	return err
}

// Delete removes a paper by its ID.
func (r *PaperRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM papers WHERE id = $1`, id)
	return err
}
