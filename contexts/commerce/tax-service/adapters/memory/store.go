package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bazaar/contexts/commerce/tax-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/tax-service/domain/errors"
	"bazaar/contexts/commerce/tax-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	rules map[string]entities.TaxRule
}

func NewStore() *Store {
	return &Store{rules: map[string]entities.TaxRule{}}
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateTaxRule(_ context.Context, rule entities.TaxRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[rule.RuleID] = rule
	return nil
}

func (s *Store) UpdateTaxRule(_ context.Context, rule entities.TaxRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rules[rule.RuleID]; !ok {
		return domainerrors.ErrTaxRuleNotFound
	}
	s.rules[rule.RuleID] = rule
	return nil
}

func (s *Store) GetTaxRule(_ context.Context, ruleID string) (entities.TaxRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rule, ok := s.rules[ruleID]
	if !ok {
		return entities.TaxRule{}, domainerrors.ErrTaxRuleNotFound
	}
	return rule, nil
}

func (s *Store) ListTaxRules(_ context.Context, filter ports.TaxRuleFilter) (ports.TaxRulePage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.TaxRule, 0, len(s.rules))
	search := strings.ToLower(filter.Search)
	for _, rule := range s.rules {
		if filter.IsActive != nil && rule.IsActive != *filter.IsActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(rule.Name), search) {
			continue
		}
		matched = append(matched, rule)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].Name < matched[j].Name
	})

	page := ports.TaxRulePage{Total: len(matched)}
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

func (s *Store) ListActiveRulesByPriority(_ context.Context) ([]entities.TaxRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.TaxRule, 0, len(s.rules))
	for _, rule := range s.rules {
		if rule.IsActive {
			items = append(items, rule)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Priority > items[j].Priority })
	return items, nil
}

func (s *Store) DeleteTaxRule(_ context.Context, ruleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rules[ruleID]; !ok {
		return domainerrors.ErrTaxRuleNotFound
	}
	delete(s.rules, ruleID)
	return nil
}
