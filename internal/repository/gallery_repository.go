package repository

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GalleryRepository handles gallery category and image data access.
type GalleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

// ListCategories retrieves all gallery categories.
func (r *GalleryRepository) ListCategories(ctx context.Context) ([]model.GalleryCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM gallery_categories ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.GalleryCategory
	for rows.Next() {
		var gc model.GalleryCategory
		if err := rows.Scan(&gc.ID, &gc.Name, &gc.Description, &gc.CreatedAt, &gc.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, gc)
	}
	return categories, rows.Err()
}

// GetCategoryByID retrieves a gallery category by its ID.
func (r *GalleryRepository) GetCategoryByID(ctx context.Context, id int) (*model.GalleryCategory, error) {
	gc := &model.GalleryCategory{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM gallery_categories WHERE id = $1`, id,
	).Scan(&gc.ID, &gc.Name, &gc.Description, &gc.CreatedAt, &gc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return gc, nil
}

// CreateCategory inserts a new gallery category.
func (r *GalleryRepository) CreateCategory(ctx context.Context, gc *model.GalleryCategory) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO gallery_categories (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		gc.Name, gc.Description,
	).Scan(&gc.ID, &gc.CreatedAt, &gc.UpdatedAt)
}

// UpdateCategory modifies an existing gallery category.
func (r *GalleryRepository) UpdateCategory(ctx context.Context, gc *model.GalleryCategory) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE gallery_categories SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		gc.Name, gc.Description, gc.ID,
	)
	return err
}

// DeleteCategory removes a gallery category. Images underneath cascade.
func (r *GalleryRepository) DeleteCategory(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery_categories WHERE id = $1`, id)
	return err
}

// ListImages retrieves images of a category, newest first. categoryID 0
// lists images across every category.
func (r *GalleryRepository) ListImages(ctx context.Context, categoryID int) ([]model.GalleryImage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, category_id, title, image_url, created_at
		 FROM gallery_images
		 WHERE ($1 = 0 OR category_id = $1)
		 ORDER BY created_at DESC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		var img model.GalleryImage
		if err := rows.Scan(&img.ID, &img.CategoryID, &img.Title, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// GetImageByID retrieves a gallery image by its ID.
func (r *GalleryRepository) GetImageByID(ctx context.Context, id int) (*model.GalleryImage, error) {
	img := &model.GalleryImage{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, category_id, title, image_url, created_at
		 FROM gallery_images WHERE id = $1`, id,
	).Scan(&img.ID, &img.CategoryID, &img.Title, &img.ImageURL, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// CreateImage inserts a new gallery image.
func (r *GalleryRepository) CreateImage(ctx context.Context, img *model.GalleryImage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO gallery_images (category_id, title, image_url)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		img.CategoryID, img.Title, img.ImageURL,
	).Scan(&img.ID, &img.CreatedAt)
}

// UpdateImage modifies an existing gallery image.
func (r *GalleryRepository) UpdateImage(ctx context.Context, img *model.GalleryImage) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE gallery_images SET category_id = $1, title = $2, image_url = $3
		 WHERE id = $4`,
		img.CategoryID, img.Title, img.ImageURL, img.ID,
	)
	return err
}

// DeleteImage removes a gallery image by its ID.
func (r *GalleryRepository) DeleteImage(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	return err
}
