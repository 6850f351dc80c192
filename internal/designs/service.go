package designs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/pkg/db/models"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	"github.com/angelmondragon/invitation-backend/pkg/pagination"
	"gorm.io/gorm"
)

type repository interface {
	List(ctx context.Context, filter Filter, cursor string, limit int) (DesignsPageDTO, error)
	FindByID(ctx context.Context, id string) (*models.Design, error)
}

// ListInput carries raw query values from the storefront.
type ListInput struct {
	Collection string
	Style      string
	Theme      string
	Color      string
	Cursor     string
	Limit      int
}

// Service exposes the design catalog and resolves designs for ordering.
type Service interface {
	List(ctx context.Context, input ListInput) (DesignsPageDTO, error)
	Get(ctx context.Context, id string) (DesignDTO, error)
	Selection(ctx context.Context, id string) (order.DesignSelection, error)
	FilterOptions() FilterOptionsDTO
}

type service struct {
	repo repository
}

var _ order.DesignResolver = (*service)(nil)

// NewService builds the catalog service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("designs repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, input ListInput) (DesignsPageDTO, error) {
	filter, err := parseFilter(input)
	if err != nil {
		return DesignsPageDTO{}, err
	}
	page, err := s.repo.List(ctx, filter, input.Cursor, input.Limit)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return DesignsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		return DesignsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list designs")
	}
	return page, nil
}

func (s *service) Get(ctx context.Context, id string) (DesignDTO, error) {
	design, err := s.find(ctx, id)
	if err != nil {
		return DesignDTO{}, err
	}
	return toDTO(*design), nil
}

// Selection turns a catalog design into the artwork carried by an order.
// Catalog designs have no format images.
func (s *service) Selection(ctx context.Context, id string) (order.DesignSelection, error) {
	design, err := s.find(ctx, id)
	if err != nil {
		return order.DesignSelection{}, err
	}
	return order.NewDesignSelection(design.ID, design.Name, design.ImageURL)
}

func (s *service) FilterOptions() FilterOptionsDTO {
	return FilterOptionsDTO{
		Style: enums.DesignStyles(),
		Theme: enums.DesignThemes(),
		Color: enums.DesignTones(),
	}
}

func (s *service) find(ctx context.Context, id string) (*models.Design, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "design id is required")
	}
	design, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "design not found").WithDetails(map[string]any{"design_id": id})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load design")
	}
	return design, nil
}

func parseFilter(input ListInput) (Filter, error) {
	var (
		filter Filter
		err    error
	)
	if v := strings.TrimSpace(input.Collection); v != "" {
		if filter.Collection, err = enums.ParseDesignCollection(v); err != nil {
			return Filter{}, invalidFilter("collection", err)
		}
	}
	if v := strings.TrimSpace(input.Style); v != "" {
		if filter.Style, err = enums.ParseDesignStyle(v); err != nil {
			return Filter{}, invalidFilter("style", err)
		}
	}
	if v := strings.TrimSpace(input.Theme); v != "" {
		if filter.Theme, err = enums.ParseDesignTheme(v); err != nil {
			return Filter{}, invalidFilter("theme", err)
		}
	}
	if v := strings.TrimSpace(input.Color); v != "" {
		if filter.Color, err = enums.ParseDesignTone(v); err != nil {
			return Filter{}, invalidFilter("color", err)
		}
	}
	return filter, nil
}

func invalidFilter(field string, err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid filter").WithDetails(map[string]any{"field": field})
}
