package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Preview is the fully hydrated letter HTML produced by the background
// refresh worker, keyed by draft id.
type Preview struct {
	DraftId    uuid.UUID
	Header     map[string]string
	Body       string
	RenderedAt time.Time
}

type PreviewRepository struct {
	cache *cache.Cache
}

func NewPreviewRepository() *PreviewRepository {
	// Previews go stale quickly once the draft changes again; a short
	// TTL bounds memory without a separate eviction pass.
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &PreviewRepository{
		cache: c,
	}
}

func (r *PreviewRepository) Save(preview *Preview) {
	r.cache.Set(preview.DraftId.String(), preview, cache.DefaultExpiration)
}

func (r *PreviewRepository) Get(draftId uuid.UUID) (*Preview, bool) {
	if x, found := r.cache.Get(draftId.String()); found {
		return x.(*Preview), true
	}
	return nil, false
}

func (r *PreviewRepository) Delete(draftId uuid.UUID) {
	r.cache.Delete(draftId.String())
}
