package store

import (
	"strings"
	"sync"
	"time"

	"storefront/models"

	"go.uber.org/zap"
)

// CategoryAll passes every product through the category filter.
const CategoryAll = "All"

// ProductStore holds the immutable catalog plus a derived filtered view.
// Changing the search term or the selected category does not recompute the
// view immediately: the commit is debounced, and a superseding change
// within the window cancels the pending commit and restarts the clock.
type ProductStore struct {
	mu               sync.Mutex
	products         []models.Product
	filtered         []models.Product
	searchTerm       string
	selectedCategory string
	loading          bool
	debounce         time.Duration
	timer            *time.Timer
	generation       uint64
	logger           *zap.Logger
}

func NewProductStore(products []models.Product, debounce time.Duration, logger *zap.Logger) *ProductStore {
	catalog := append([]models.Product(nil), products...)
	return &ProductStore{
		products:         catalog,
		filtered:         catalog,
		selectedCategory: CategoryAll,
		debounce:         debounce,
		logger:           logger,
	}
}

func (s *ProductStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
	s.scheduleLocked()
}

func (s *ProductStore) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
	s.scheduleLocked()
}

func (s *ProductStore) scheduleLocked() {
	s.loading = true
	s.generation++
	gen := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.commit(gen) })
}

// commit applies the filter for one scheduled window. A superseded commit
// is dropped: Stop cannot cancel a timer whose callback has already fired
// and is waiting on the mutex.
func (s *ProductStore) commit(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}

	s.filtered = FilterProducts(s.products, s.searchTerm, s.selectedCategory)
	s.loading = false
	s.logger.Info("Filter committed",
		zap.String("search_term", s.searchTerm),
		zap.String("category", s.selectedCategory),
		zap.Int("matches", len(s.filtered)),
	)
}

func (s *ProductStore) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

// Product looks the id up in the full catalog, not the filtered view.
func (s *ProductStore) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *ProductStore) FilteredProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.filtered...)
}

func (s *ProductStore) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

func (s *ProductStore) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

func (s *ProductStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Categories returns "All" followed by the distinct catalog categories in
// first-seen order.
func (s *ProductStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// FilterProducts is the pure filter: category first ("All" passes
// everything), then a case-insensitive substring match of the trimmed
// search term against name, description, and category.
func FilterProducts(products []models.Product, searchTerm, category string) []models.Product {
	filtered := products

	if category != "" && category != CategoryAll {
		byCategory := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if p.Category == category {
				byCategory = append(byCategory, p)
			}
		}
		filtered = byCategory
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term != "" {
		byTerm := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				strings.Contains(strings.ToLower(p.Category), term) {
				byTerm = append(byTerm, p)
			}
		}
		filtered = byTerm
	}

	return filtered
}
