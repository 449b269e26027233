package content

import "context"

// Per-endpoint caps. Fixed by contract; no query parameter overrides them.
const (
	testimonialLimit  = 3
	successStoryLimit = 3
	faqLimit          = 4
)

// Collections names the content collections a Service reads from.
type Collections struct {
	Testimonials   string
	SuccessStories string
	FAQ            string
}

// Cache is an optional read-through cache for content collections.
// Implementations treat any failure as a miss.
type Cache interface {
	Get(ctx context.Context, collection string) ([]Document, bool)
	Set(ctx context.Context, collection string, docs []Document)
}

// Service reads capped content collections, optionally through a cache.
type Service struct {
	repo  Repository
	cols  Collections
	cache Cache
}

// NewService creates a content Service. cache may be nil.
func NewService(repo Repository, cols Collections, cache Cache) *Service {
	return &Service{repo: repo, cols: cols, cache: cache}
}

// Testimonials returns up to 3 client testimonials.
func (s *Service) Testimonials(ctx context.Context) ([]Document, error) {
	return s.fetch(ctx, s.cols.Testimonials, testimonialLimit)
}

// SuccessStories returns up to 3 success stories.
func (s *Service) SuccessStories(ctx context.Context) ([]Document, error) {
	return s.fetch(ctx, s.cols.SuccessStories, successStoryLimit)
}

// FAQ returns up to 4 frequently asked questions.
func (s *Service) FAQ(ctx context.Context) ([]Document, error) {
	return s.fetch(ctx, s.cols.FAQ, faqLimit)
}

func (s *Service) fetch(ctx context.Context, collection string, limit int64) ([]Document, error) {
	if s.cache != nil {
		if docs, ok := s.cache.Get(ctx, collection); ok {
			return docs, nil
		}
	}
	docs, err := s.repo.FindFirst(ctx, collection, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, collection, docs)
	}
	return docs, nil
}
