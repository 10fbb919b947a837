package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bazaar/contexts/catalog/category-service/domain/entities"
	domainerrors "bazaar/contexts/catalog/category-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	categories map[string]entities.Category
}

func NewStore() *Store {
	return &Store{categories: map[string]entities.Category{}}
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateCategory(_ context.Context, category entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Slug == category.Slug {
			return domainerrors.ErrSlugConflict
		}
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) UpdateCategory(_ context.Context, category entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.CategoryID]; !ok {
		return domainerrors.ErrCategoryNotFound
	}
	for _, existing := range s.categories {
		if existing.CategoryID != category.CategoryID && existing.Slug == category.Slug {
			return domainerrors.ErrSlugConflict
		}
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) GetCategory(_ context.Context, categoryID string) (entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[categoryID]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	return category, nil
}

func (s *Store) ListCategories(_ context.Context) ([]entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Category, 0, len(s.categories))
	for _, category := range s.categories {
		items = append(items, category)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) DeleteCategory(_ context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[categoryID]; !ok {
		return domainerrors.ErrCategoryNotFound
	}
	for _, existing := range s.categories {
		if existing.ParentID == categoryID {
			return domainerrors.ErrCategoryHasChildren
		}
	}
	delete(s.categories, categoryID)
	return nil
}
