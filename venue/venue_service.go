package venue

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

type VenueRepository interface {
	ListVenues(ctx context.Context, coords *Coordinates, page, limit int) ([]Venue, int, error)
	GetVenueByID(ctx context.Context, id string) (Venue, error)
}

type Service struct {
	repo  VenueRepository
	cache *cache.Cache
}

// NewService wraps the repository with a short-TTL page cache. Venue
// data changes rarely; stale pages expire on their own.
func NewService(repo VenueRepository, cacheTTL time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(cacheTTL, 5*time.Minute),
	}
}

func (s *Service) ListVenues(ctx context.Context, coords *Coordinates, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 || limit > 100 {
		limit = 10
	}

	key := pageKey(coords, page, limit)

	if cached, found := s.cache.Get(key); found {
		return cached.(Page), nil
	}

	venues, total, err := s.repo.ListVenues(ctx, coords, page, limit)

	if err != nil {
		return Page{}, err
	}

	result := Page{
		Page:   page,
		Limit:  limit,
		Total:  total,
		Venues: venues,
	}

	s.cache.SetDefault(key, result)

	return result, nil
}

func (s *Service) FindVenueByID(ctx context.Context, id string) (Venue, error) {
	return s.repo.GetVenueByID(ctx, id)
}

func pageKey(coords *Coordinates, page, limit int) string {
	if coords == nil {
		return fmt.Sprintf("venues:%d:%d", page, limit)
	}

	return fmt.Sprintf("venues:%d:%d:%.5f:%.5f", page, limit, coords.Lat, coords.Lng)
}
