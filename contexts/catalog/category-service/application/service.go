package application

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"bazaar/contexts/catalog/category-service/domain/entities"
	domainerrors "bazaar/contexts/catalog/category-service/domain/errors"
	"bazaar/contexts/catalog/category-service/ports"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	ParentID    string
	IsActive    bool
}

func (s Service) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s Service) GetCategory(ctx context.Context, categoryID string) (entities.Category, error) {
	if strings.TrimSpace(categoryID) == "" {
		return entities.Category{}, domainerrors.ErrInvalidCategoryInput
	}
	return s.Repo.GetCategory(ctx, strings.TrimSpace(categoryID))
}

func (s Service) CreateCategory(ctx context.Context, input CategoryInput) (entities.Category, error) {
	if err := s.validate(input); err != nil {
		return entities.Category{}, err
	}
	if input.ParentID != "" {
		if _, err := s.Repo.GetCategory(ctx, input.ParentID); err != nil {
			return entities.Category{}, domainerrors.ErrParentNotFound
		}
	}

	categoryID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Category{}, err
	}
	now := s.now()
	category := entities.Category{
		CategoryID:  categoryID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        strings.TrimSpace(input.Slug),
		Description: strings.TrimSpace(input.Description),
		ParentID:    strings.TrimSpace(input.ParentID),
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		return entities.Category{}, err
	}
	return category, nil
}

func (s Service) UpdateCategory(ctx context.Context, categoryID string, input CategoryInput) (entities.Category, error) {
	if strings.TrimSpace(categoryID) == "" {
		return entities.Category{}, domainerrors.ErrInvalidCategoryInput
	}
	if err := s.validate(input); err != nil {
		return entities.Category{}, err
	}

	current, err := s.Repo.GetCategory(ctx, strings.TrimSpace(categoryID))
	if err != nil {
		return entities.Category{}, err
	}
	current.Name = strings.TrimSpace(input.Name)
	current.Slug = strings.TrimSpace(input.Slug)
	current.Description = strings.TrimSpace(input.Description)
	current.ParentID = strings.TrimSpace(input.ParentID)
	current.IsActive = input.IsActive
	current.UpdatedAt = s.now()

	if err := s.Repo.UpdateCategory(ctx, current); err != nil {
		return entities.Category{}, err
	}
	return current, nil
}

func (s Service) DeleteCategory(ctx context.Context, categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return domainerrors.ErrInvalidCategoryInput
	}
	return s.Repo.DeleteCategory(ctx, strings.TrimSpace(categoryID))
}

func (s Service) validate(input CategoryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrInvalidCategoryInput
	}
	if !slugPattern.MatchString(strings.TrimSpace(input.Slug)) {
		return domainerrors.ErrInvalidCategoryInput
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
