package repository

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NoteRepository handles note data access.
type NoteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteSelect = `
	SELECT n.id, n.section_id, n.title, n.drive_link, n.description, n.created_at, n.updated_at,
	       s.id, s.batch_id, s.name, s.created_at, s.updated_at,
	       b.id, b.name, b.start_year, b.end_year, b.created_at, b.updated_at
	FROM notes n
	JOIN sections s ON s.id = n.section_id
	JOIN batches b ON b.id = s.batch_id`

func scanNote(row interface{ Scan(...any) error }) (model.Note, error) {
	n := model.Note{Section: &model.Section{Batch: &model.Batch{}}}
	err := row.Scan(&n.ID, &n.SectionID, &n.Title, &n.DriveLink, &n.Description, &n.CreatedAt, &n.UpdatedAt,
		&n.Section.ID, &n.Section.BatchID, &n.Section.Name, &n.Section.CreatedAt, &n.Section.UpdatedAt,
		&n.Section.Batch.ID, &n.Section.Batch.Name, &n.Section.Batch.StartYear, &n.Section.Batch.EndYear,
		&n.Section.Batch.CreatedAt, &n.Section.Batch.UpdatedAt)
	return n, err
}

// GetByID retrieves a note with its section and batch resolved.
func (r *NoteRepository) GetByID(ctx context.Context, id int) (*model.Note, error) {
	n, err := scanNote(r.pool.QueryRow(ctx, noteSelect+` WHERE n.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// List retrieves notes joined with section→batch. sectionID 0 lists all.
func (r *NoteRepository) List(ctx context.Context, sectionID int) ([]model.Note, error) {
	rows, err := r.pool.Query(ctx,
		noteSelect+` WHERE ($1 = 0 OR n.section_id = $1) ORDER BY n.created_at DESC`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Create inserts a new note.
func (r *NoteRepository) Create(ctx context.Context, n *model.Note) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notes (section_id, title, drive_link, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		n.SectionID, n.Title, n.DriveLink, n.Description,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// Update modifies an existing note.
func (r *NoteRepository) Update(ctx context.Context, n *model.Note) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notes SET section_id = $1, title = $2, drive_link = $3, description = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		n.SectionID, n.Title, n.DriveLink, n.Description, n.ID,
	)
	return err
}

// Delete removes a note by its ID.
func (r *NoteRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return err
}
