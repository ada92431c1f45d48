package catalog

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrShowNotFound is returned when the requested show does not exist
var ErrShowNotFound = errors.New("show not found")

// Service interface defines the contract for catalog business logic
type Service interface {
	CreateShow(ctx context.Context, req CreateShowRequest) (*Show, error)
	GetShow(ctx context.Context, showID uuid.UUID) (*Show, error)
	ListShows(ctx context.Context, limit, offset int) ([]Show, error)
}

// service implements the Service interface
type service struct {
	repo         Repository
	config       *config.Config
	cacheService cache.Service
}

// NewService creates a new catalog service instance. The cache service is
// optional; without it every read goes to the database.
func NewService(repo Repository, cfg *config.Config, cacheService cache.Service) Service {
	return &service{
		repo:         repo,
		config:       cfg,
		cacheService: cacheService,
	}
}

func (s *service) CreateShow(ctx context.Context, req CreateShowRequest) (*Show, error) {
	show := &Show{
		Title:         req.Title,
		Theater:       req.Theater,
		StartTime:     req.StartTime,
		PriceSilver:   req.PriceSilver,
		PriceGold:     req.PriceGold,
		PricePlatinum: req.PricePlatinum,
		SeatsSilver:   req.SeatsSilver,
		SeatsGold:     req.SeatsGold,
		SeatsPlatinum: req.SeatsPlatinum,
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	// Stale listings are acceptable for their TTL; detail entries are not
	if s.cacheService != nil {
		_ = s.cacheService.DeletePattern(ctx, constants.PatternInvalidateShows)
	}

	return show, nil
}

func (s *service) GetShow(ctx context.Context, showID uuid.UUID) (*Show, error) {
	if s.cacheService == nil {
		return s.getShowFromDB(ctx, showID)
	}

	var show Show
	key := constants.BuildShowDetailKey(showID.String())
	err := s.cacheService.GetOrSet(ctx, key, s.config.Redis.CacheTTL, func() (interface{}, error) {
		return s.getShowFromDB(ctx, showID)
	}, &show)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}

	return &show, nil
}

func (s *service) getShowFromDB(ctx context.Context, showID uuid.UUID) (*Show, error) {
	show, err := s.repo.GetByID(ctx, showID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}
	return show, nil
}

func (s *service) ListShows(ctx context.Context, limit, offset int) ([]Show, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}
