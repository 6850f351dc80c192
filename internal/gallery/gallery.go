package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/invitation-backend/internal/repo"
	"github.com/angelmondragon/invitation-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	"github.com/angelmondragon/invitation-backend/pkg/pagination"
	"github.com/angelmondragon/invitation-backend/pkg/types"
	"gorm.io/gorm"
)

// ItemDTO is a customer story card.
type ItemDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Story    string `json:"story"`
}

type ItemsPageDTO = types.Page[ItemDTO]

// Repository reads gallery stories.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) List(ctx context.Context, cursor string, limit int) (ItemsPageDTO, error) {
	rows, next, err := repo.KeysetPage(r.DB(ctx).Model(&models.GalleryItem{}), cursor, limit, func(g models.GalleryItem) pagination.Cursor {
		return pagination.Cursor{Position: g.Position, ID: g.ID}
	})
	if err != nil {
		return ItemsPageDTO{}, err
	}

	items := make([]ItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDTO(row))
	}
	return ItemsPageDTO{Items: items, NextCursor: next}, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.DB(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

type repository interface {
	List(ctx context.Context, cursor string, limit int) (ItemsPageDTO, error)
	FindByID(ctx context.Context, id string) (*models.GalleryItem, error)
}

// Service exposes the customer story gallery.
type Service interface {
	List(ctx context.Context, cursor string, limit int) (ItemsPageDTO, error)
	Get(ctx context.Context, id string) (ItemDTO, error)
}

type service struct {
	repo repository
}

func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("gallery repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, cursor string, limit int) (ItemsPageDTO, error) {
	page, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return ItemsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		return ItemsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list gallery")
	}
	return page, nil
}

func (s *service) Get(ctx context.Context, id string) (ItemDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "gallery item id is required")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
		}
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load gallery item")
	}
	return toDTO(*item), nil
}

func toDTO(m models.GalleryItem) ItemDTO {
	return ItemDTO{ID: m.ID, Title: m.Title, ImageURL: m.ImageURL, Story: m.Story}
}
