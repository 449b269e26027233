package messages

import "context"

// Service encapsulates contact submission intake.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Submit normalizes the draft and persists the resulting message, returning
// the store-assigned identifier. No store interaction happens when
// normalization fails.
func (s *Service) Submit(ctx context.Context, d Draft) (string, error) {
	m, err := Normalize(d)
	if err != nil {
		return "", err
	}
	return s.repo.Insert(ctx, m)
}
