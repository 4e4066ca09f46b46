package breeds

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, name string) (*Breed, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	breed := Breed{Name: name}
	if err := s.repo.Create(ctx, &breed); err != nil {
		return nil, err
	}
	return &breed, nil
}

// EnsureNames creates every breed from names that does not exist yet and
// returns how many were created. Matching is case-insensitive.
func (s *Service) EnsureNames(ctx context.Context, names []string) (int, error) {
	existing, err := s.repo.ListNames(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		seen[strings.ToLower(name)] = struct{}{}
	}

	created := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		if _, err := s.Create(ctx, name); err != nil {
			return created, err
		}
		seen[key] = struct{}{}
		created++
	}

	return created, nil
}
