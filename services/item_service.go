package services

import (
	"context"
	"errors"
	"strings"

	"bike-shop/models"
	"bike-shop/repositories"
	"bike-shop/utils"

	log "github.com/sirupsen/logrus"
)

var (
	ErrItemNotFound = repositories.ErrItemNotFound
	ErrItemExists   = repositories.ErrItemExists
	ErrInvalidItem  = errors.New("invalid item")
)

type ItemRepository interface {
	List(ctx context.Context, normalized string) ([]models.Item, error)
	GetByID(ctx context.Context, id int) (*models.Item, error)
	Create(ctx context.Context, item models.Item) error
	Update(ctx context.Context, item models.Item) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	InsertMany(ctx context.Context, items []models.Item) (int, error)
}

type ItemService struct {
	repo  ItemRepository
	cache ItemCache
}

// NewItemService accepts a nil cache; lists then always hit the repository.
func NewItemService(repo ItemRepository, cache ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: cache}
}

// List returns every item, or the items whose name or type contains search
// case-insensitively. The result is never nil.
func (s *ItemService) List(ctx context.Context, search string) ([]models.Item, error) {
	normalized := utils.NormalizeQuery(search)
	logger := log.WithField("search", normalized)

	if s.cache != nil {
		items, err := s.cache.GetList(ctx, normalized)
		if err == nil {
			logger.Debug("Serving items from cache")
			return items, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			logger.WithError(err).Warn("Item cache read failed")
		}
	}

	if normalized == "" {
		logger.Info("Fetching all items")
	} else {
		logger.Info("Performing item search")
	}

	items, err := s.repo.List(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, normalized, items); err != nil {
			logger.WithError(err).Warn("Item cache write failed")
		}
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id int) (*models.Item, error) {
	if id <= 0 {
		return nil, ErrItemNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	item := models.Item{
		ID:    req.ID,
		Name:  strings.TrimSpace(req.Name),
		Type:  strings.TrimSpace(req.Type),
		Price: req.Price,
		Image: strings.TrimSpace(req.Image),
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &item, nil
}

func (s *ItemService) Update(ctx context.Context, id int, req models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		item.Type = strings.TrimSpace(*req.Type)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = strings.TrimSpace(*req.Image)
	}
	if err := validateItem(*item); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *ItemService) SetImage(ctx context.Context, id int, image string) (*models.Item, error) {
	return s.Update(ctx, id, models.UpdateItemRequest{Image: &image})
}

func (s *ItemService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ItemService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("Item cache invalidation failed")
	}
}

func validateItem(item models.Item) error {
	if item.ID <= 0 || item.Name == "" || item.Type == "" || item.Image == "" || item.Price < 0 {
		return ErrInvalidItem
	}
	return nil
}
