package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PublicBatchesKey returns the cache key for the public batch list.
func (r *CacheKeyStruct) PublicBatchesKey() string {
	return "public:batches"
}

// PublicSectionsKey returns the cache key for a batch's section list.
func (r *CacheKeyStruct) PublicSectionsKey(batchID int) string {
	return fmt.Sprintf("public:batch:%d:sections", batchID)
}

// PublicNotesKey returns the cache key for a section's note list.
func (r *CacheKeyStruct) PublicNotesKey(sectionID int) string {
	return fmt.Sprintf("public:section:%d:notes", sectionID)
}

// PublicPapersKey returns the cache key for a section's paper list.
func (r *CacheKeyStruct) PublicPapersKey(sectionID int) string {
	return fmt.Sprintf("public:section:%d:papers", sectionID)
}

// PublicGalleryCategoriesKey returns the cache key for the gallery category list.
func (r *CacheKeyStruct) PublicGalleryCategoriesKey() string {
	return "public:gallery:categories"
}

// PublicGalleryImagesKey returns the cache key for a gallery category's images.
func (r *CacheKeyStruct) PublicGalleryImagesKey(categoryID int) string {
	return fmt.Sprintf("public:gallery:category:%d:images", categoryID)
}

// PublicNoticeCategoriesKey returns the cache key for the notice category list.
func (r *CacheKeyStruct) PublicNoticeCategoriesKey() string {
	return "public:notice:categories"
}

// PublicNoticesKey returns the cache key for a notice list. categoryID 0 means
// all categories.
func (r *CacheKeyStruct) PublicNoticesKey(categoryID int) string {
	return fmt.Sprintf("public:notices:category:%d", categoryID)
}

// DashboardCountsKey returns the cache key for the admin dashboard counters.
func (r *CacheKeyStruct) DashboardCountsKey() string {
	return "dashboard:counts"
}

var CacheKey = NewCacheKeyStruct()
