package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bazaar/contexts/catalog/product-service/domain/entities"
	domainerrors "bazaar/contexts/catalog/product-service/domain/errors"
	"bazaar/contexts/catalog/product-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the repository, clock, and ID
// generator ports. It is intended for tests and local development wiring.
type Store struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

func NewStore() *Store {
	return &Store{products: map[string]entities.Product{}}
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateProduct(_ context.Context, product entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.products {
		if existing.SKU == product.SKU {
			return domainerrors.ErrSKUConflict
		}
	}
	s.products[product.ProductID] = product
	return nil
}

func (s *Store) UpdateProduct(_ context.Context, product entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ProductID]; !ok {
		return domainerrors.ErrProductNotFound
	}
	s.products[product.ProductID] = product
	return nil
}

func (s *Store) GetProduct(_ context.Context, productID string) (entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[productID]
	if !ok {
		return entities.Product{}, domainerrors.ErrProductNotFound
	}
	return product, nil
}

func (s *Store) ListProducts(_ context.Context, filter ports.ProductFilter) (ports.ProductPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Product, 0, len(s.products))
	search := strings.ToLower(filter.Search)
	for _, product := range s.products {
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.SKU), search) {
			continue
		}
		matched = append(matched, product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page := ports.ProductPage{Total: len(matched)}
	start := (filter.Page - 1) * filter.PerPage
	if start >= len(matched) {
		return page, nil
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	page.Items = matched[start:end]
	return page, nil
}

func (s *Store) ArchiveProduct(_ context.Context, productID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	product.Status = entities.ProductStatusArchived
	product.UpdatedAt = at
	s.products[productID] = product
	return nil
}
