package repository

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// DashboardCounts holds the high-level entity counters shown on the dashboard.
type DashboardCounts struct {
	Batches        int `json:"batches"`
	Sections       int `json:"sections"`
	Notes          int `json:"notes"`
	Papers         int `json:"papers"`
	GalleryImages  int `json:"gallery_images"`
	Notices        int `json:"notices"`
	Users          int `json:"users"`
	ActiveSessions int `json:"active_sessions"`
}

// GetCounts retrieves the entity counters in a single round-trip.
func (r *DashboardRepository) GetCounts(ctx context.Context) (*DashboardCounts, error) {
	dc := &DashboardCounts{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM batches),
			(SELECT COUNT(*) FROM sections),
			(SELECT COUNT(*) FROM notes),
			(SELECT COUNT(*) FROM papers),
			(SELECT COUNT(*) FROM gallery_images),
			(SELECT COUNT(*) FROM notices),
			(SELECT COUNT(*) FROM users WHERE is_active),
			(SELECT COUNT(*) FROM sessions WHERE expires_at > NOW())`,
	).Scan(&dc.Batches, &dc.Sections, &dc.Notes, &dc.Papers, &dc.GalleryImages, &dc.Notices, &dc.Users, &dc.ActiveSessions)
	if err != nil {
		return nil, err
	}
	return dc, nil
}

// GetRecentNotices retrieves the N most recently published notices.
func (r *DashboardRepository) GetRecentNotices(ctx context.Context, limit int) ([]model.Notice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT n.id, n.category_id, n.title, n.body, n.attachment_url, n.is_pinned, n.published_at,
		        n.created_at, n.updated_at, c.name
		 FROM notices n JOIN notice_categories c ON c.id = n.category_id
		 ORDER BY n.published_at DESC LIMIT $1`, limit)
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
	if notices == nil {
		notices = []model.Notice{}
	}
	return notices, rows.Err()
}
