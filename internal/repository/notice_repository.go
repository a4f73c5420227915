package repository

import (
	"context"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// nullableTime maps the zero time to NULL so COALESCE defaults apply.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// NoticeRepository handles notice category and notice data access.
type NoticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

// ListCategories retrieves all notice categories.
func (r *NoticeRepository) ListCategories(ctx context.Context) ([]model.NoticeCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM notice_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.NoticeCategory
	for rows.Next() {
		var nc model.NoticeCategory
		if err := rows.Scan(&nc.ID, &nc.Name, &nc.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, nc)
	}
	return categories, rows.Err()
}

// GetCategoryByID retrieves a notice category by its ID.
func (r *NoticeRepository) GetCategoryByID(ctx context.Context, id int) (*model.NoticeCategory, error) {
	nc := &model.NoticeCategory{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM notice_categories WHERE id = $1`, id,
	).Scan(&nc.ID, &nc.Name, &nc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// CreateCategory inserts a new notice category.
func (r *NoticeRepository) CreateCategory(ctx context.Context, nc *model.NoticeCategory) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notice_categories (name) VALUES ($1) RETURNING id, created_at`,
		nc.Name,
	).Scan(&nc.ID, &nc.CreatedAt)
}

// UpdateCategory renames a notice category.
func (r *NoticeRepository) UpdateCategory(ctx context.Context, nc *model.NoticeCategory) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notice_categories SET name = $1 WHERE id = $2`, nc.Name, nc.ID)
	return err
}

// DeleteCategory removes a notice category. Notices underneath cascade.
func (r *NoticeRepository) DeleteCategory(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notice_categories WHERE id = $1`, id)
	return err
}

// GetByID retrieves a notice with its category name resolved.
func (r *NoticeRepository) GetByID(ctx context.Context, id int) (*model.Notice, error) {
	n := &model.Notice{}
	err := r.pool.QueryRow(ctx,
		`SELECT n.id, n.category_id, n.title, n.body, n.attachment_url, n.is_pinned, n.published_at,
		        n.created_at, n.updated_at, c.name
		 FROM notices n JOIN notice_categories c ON c.id = n.category_id
		 WHERE n.id = $1`, id,
	).Scan(&n.ID, &n.CategoryID, &n.Title, &n.Body, &n.AttachmentURL, &n.IsPinned, &n.PublishedAt,
		&n.CreatedAt, &n.UpdatedAt, &n.CategoryName)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// List retrieves notices, pinned first then newest. categoryID 0 lists all.
func (r *NoticeRepository) List(ctx context.Context, categoryID int) ([]model.Notice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT n.id, n.category_id, n.title, n.body, n.attachment_url, n.is_pinned, n.published_at,
		        n.created_at, n.updated_at, c.name
		 FROM notices n JOIN notice_categories c ON c.id = n.category_id
		 WHERE ($1 = 0 OR n.category_id = $1)
		 ORDER BY n.is_pinned DESC, n.published_at DESC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.CategoryID, &n.Title, &n.Body, &n.AttachmentURL, &n.IsPinned,
			&n.PublishedAt, &n.CreatedAt, &n.UpdatedAt, &n.CategoryName); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, n *model.Notice) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notices (category_id, title, body, attachment_url, is_pinned, published_at)
		 VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		 RETURNING id, published_at, created_at, updated_at`,
		n.CategoryID, n.Title, n.Body, n.AttachmentURL, n.IsPinned, nullableTime(n.PublishedAt),
	).Scan(&n.ID, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
}

// Update modifies an existing notice.
func (r *NoticeRepository) Update(ctx context.Context, n *model.Notice) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notices SET category_id = $1, title = $2, body = $3, attachment_url = $4,
		        is_pinned = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		n.CategoryID, n.Title, n.Body, n.AttachmentURL, n.IsPinned, n.ID,
	)
	return err
}

// Delete removes a notice by its ID.
func (r *NoticeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	return err
}
