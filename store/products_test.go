package store

import (
	"testing"
	"time"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testDebounce = 20 * time.Millisecond

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Aurora Smartphone X", Category: "Electronics", Description: "OLED phone with a two-day battery"},
		{ID: "2", Name: "Pulse Headphones", Category: "Electronics", Description: "Noise cancelling over-ear"},
		{ID: "3", Name: "Harbor Denim Jacket", Category: "Clothing", Description: "Classic stonewash blue"},
		{ID: "4", Name: "Summit Bottle", Category: "Accessories", Description: "Keeps drinks cold, phone-free mornings"},
	}
}

func waitForCommit(t *testing.T, s *ProductStore) {
	t.Helper()
	deadline := time.Now().Add(50 * testDebounce)
	for time.Now().Before(deadline) {
		if !s.IsLoading() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("filter commit did not happen before deadline")
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestProductStore_IdentityFilter(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	assert.Equal(t, testCatalog(), s.FilteredProducts())
	assert.Equal(t, CategoryAll, s.SelectedCategory())
	assert.False(t, s.IsLoading())

	s.SetSearchTerm("")
	s.SetSelectedCategory(CategoryAll)
	waitForCommit(t, s)

	assert.Equal(t, testCatalog(), s.FilteredProducts())
}

func TestProductStore_CategoryFilter(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	s.SetSelectedCategory("Clothing")
	waitForCommit(t, s)

	assert.Equal(t, []string{"3"}, productIDs(s.FilteredProducts()))
}

func TestProductStore_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	// "PHONE" matches names (Smartphone, Headphones), descriptions
	// ("phone-free") and nothing by category.
	s.SetSearchTerm("  PHONE ")
	waitForCommit(t, s)

	assert.Equal(t, []string{"1", "2", "4"}, productIDs(s.FilteredProducts()))
}

func TestProductStore_SearchMatchesCategoryField(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	s.SetSearchTerm("electro")
	waitForCommit(t, s)

	assert.Equal(t, []string{"1", "2"}, productIDs(s.FilteredProducts()))
}

func TestProductStore_CategoryThenSearch(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	s.SetSelectedCategory("Electronics")
	s.SetSearchTerm("phone")
	waitForCommit(t, s)

	assert.Equal(t, []string{"1", "2"}, productIDs(s.FilteredProducts()))
}

func TestProductStore_DebounceCoalescesRapidInput(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	s.SetSearchTerm("denim")
	require.True(t, s.IsLoading())

	// Before the window elapses the view still shows the previous commit.
	assert.Equal(t, testCatalog(), s.FilteredProducts())

	// A superseding change restarts the window; only the final term commits.
	s.SetSearchTerm("headphones")
	waitForCommit(t, s)

	assert.Equal(t, []string{"2"}, productIDs(s.FilteredProducts()))
	assert.Equal(t, "headphones", s.SearchTerm())
}

func TestProductStore_SupersededCommitIsDropped(t *testing.T) {
	// A long window keeps the timers from firing; commits run by hand.
	s := NewProductStore(testCatalog(), time.Hour, zaptest.NewLogger(t))

	s.SetSearchTerm("denim")
	s.mu.Lock()
	stale := s.generation
	s.mu.Unlock()

	s.SetSearchTerm("headphones")

	// A timer callback from the first schedule can still reach commit
	// after the reschedule; it must not end the new window.
	s.commit(stale)

	assert.True(t, s.IsLoading())
	assert.Equal(t, testCatalog(), s.FilteredProducts())

	// The current schedule commits normally.
	s.mu.Lock()
	current := s.generation
	s.mu.Unlock()
	s.commit(current)

	assert.False(t, s.IsLoading())
	assert.Equal(t, []string{"2"}, productIDs(s.FilteredProducts()))
}

func TestProductStore_Categories(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	assert.Equal(t, []string{"All", "Electronics", "Clothing", "Accessories"}, s.Categories())
}

func TestProductStore_ProductLookupIgnoresFilter(t *testing.T) {
	s := NewProductStore(testCatalog(), testDebounce, zaptest.NewLogger(t))

	s.SetSelectedCategory("Clothing")
	waitForCommit(t, s)

	p, ok := s.Product("1")
	require.True(t, ok)
	assert.Equal(t, "Aurora Smartphone X", p.Name)

	_, ok = s.Product("missing")
	assert.False(t, ok)
}

func TestFilterProducts_Pure(t *testing.T) {
	products := testCatalog()

	assert.Equal(t, products, FilterProducts(products, "", CategoryAll))
	assert.Empty(t, FilterProducts(products, "no such product", CategoryAll))
	assert.Equal(t, products, FilterProducts(products, "", ""))

	// Input order is preserved.
	filtered := FilterProducts(products, "e", CategoryAll)
	assert.Equal(t, productIDs(products), productIDs(filtered))
}
