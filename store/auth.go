package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"storefront/models"
	"storefront/persistence"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Persisted keys. They are not scoped by user id: two accounts logging in
// on the same installation read and write the same wishlist and order
// history. That mirrors the observed behavior of the system this replaces
// and is a known gap, not a feature.
const (
	keyUser     = "user"
	keyWishlist = "wishlist"
	keyOrders   = "orders"
)

type credential struct {
	id           string
	name         string
	email        string
	passwordHash []byte
}

// AuthStore owns the session: the signed-in user, the wishlist, and the
// order history. Login and signup simulate a network round-trip with a
// fixed latency; wrong credentials and duplicate signups are ordinary
// boolean results, never errors. Every mutation of user, wishlist, or
// orders rewrites the corresponding persisted key after the transition
// commits.
type AuthStore struct {
	mu      sync.RWMutex
	state   models.AuthState
	creds   []credential
	gateway persistence.Gateway
	latency time.Duration
	logger  *zap.Logger
}

func NewAuthStore(gateway persistence.Gateway, latency time.Duration, logger *zap.Logger) *AuthStore {
	s := &AuthStore{
		state: models.AuthState{
			Wishlist: []string{},
			Orders:   []models.Order{},
		},
		gateway: gateway,
		latency: latency,
		logger:  logger,
	}
	s.seedCredentials()
	s.hydrate(context.Background())
	return s
}

// seedCredentials installs the fixed demo accounts. There is no real
// backend; these stand in for it.
func (s *AuthStore) seedCredentials() {
	for _, seed := range []struct{ id, name, email, password string }{
		{"1", "John Doe", "john@example.com", "password123"},
		{"2", "Jane Smith", "jane@example.com", "password123"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Failed to hash seed credential", zap.String("email", seed.email), zap.Error(err))
			continue
		}
		s.creds = append(s.creds, credential{
			id:           seed.id,
			name:         seed.name,
			email:        seed.email,
			passwordHash: hash,
		})
	}
}

// hydrate restores the session from the gateway. A corrupt entry is
// deleted and its slice falls back to the empty default; hydration never
// fails.
func (s *AuthStore) hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *models.User
	if s.loadKey(ctx, keyUser, &user) && user != nil {
		s.state = reduceAuth(s.state, loadUser{user: user})
	}

	var wishlist []string
	if s.loadKey(ctx, keyWishlist, &wishlist) && wishlist != nil {
		s.state = reduceAuth(s.state, loadWishlist{wishlist: wishlist})
	}

	var orders []models.Order
	if s.loadKey(ctx, keyOrders, &orders) && orders != nil {
		s.state = reduceAuth(s.state, loadOrders{orders: orders})
	}
}

func (s *AuthStore) loadKey(ctx context.Context, key string, v any) bool {
	data, ok, err := s.gateway.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to read persisted state", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("Discarding corrupt persisted state", zap.String("key", key), zap.Error(err))
		if err := s.gateway.Remove(ctx, key); err != nil {
			s.logger.Warn("Failed to delete corrupt key", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return true
}

// Login authenticates against the credential set after the simulated
// latency. On success the persisted wishlist and orders are loaded into
// the session. A false return means wrong credentials; the session exits
// the loading state anonymous and the persisted user key is cleared with
// it.
func (s *AuthStore) Login(ctx context.Context, email, password string) bool {
	s.begin()

	cred, found := s.findCredential(email)
	if !found || bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)) != nil {
		s.fail(ctx)
		s.logger.Info("Login failed", zap.String("email", email))
		return false
	}

	s.succeed(ctx, models.User{ID: cred.id, Name: cred.name, Email: cred.email})
	s.logger.Info("User logged in", zap.String("email", email))
	return true
}

// Signup fails when the email is already registered (exact string match,
// like the login lookup) and otherwise creates the credential and
// authenticates immediately.
func (s *AuthStore) Signup(ctx context.Context, name, email, password string) bool {
	s.begin()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.fail(ctx)
		s.logger.Error("Failed to hash password", zap.Error(err))
		return false
	}

	cred := credential{
		id:           uuid.NewString(),
		name:         name,
		email:        email,
		passwordHash: hash,
	}
	if !s.registerCredential(cred) {
		s.fail(ctx)
		s.logger.Info("Signup rejected, email already registered", zap.String("email", email))
		return false
	}

	s.succeed(ctx, models.User{ID: cred.id, Name: cred.name, Email: cred.email})
	s.logger.Info("User signed up", zap.String("email", email))
	return true
}

// registerCredential inserts the credential unless the email is already
// taken. The existence check and the insert share one critical section,
// so two concurrent signups for the same email cannot both pass.
func (s *AuthStore) registerCredential(cred credential) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.creds {
		if existing.email == cred.email {
			return false
		}
	}
	s.creds = append(s.creds, cred)
	return true
}

// begin enters the authenticating state and waits out the simulated
// round-trip. The wait is not cancellable: a caller that goes away still
// gets the eventual transition.
func (s *AuthStore) begin() {
	s.mu.Lock()
	s.state = reduceAuth(s.state, loginStart{})
	s.mu.Unlock()

	time.Sleep(s.latency)
}

// fail exits the loading state. The transition clears the user, so the
// persisted user key is rewritten too; a stale key must not resurrect a
// session the store just rejected.
func (s *AuthStore) fail(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceAuth(s.state, loginFailure{})
	s.persistUserLocked(ctx)
}

func (s *AuthStore) succeed(ctx context.Context, user models.User) {
	var wishlist []string
	var orders []models.Order

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduceAuth(s.state, loginSuccess{user: user})
	if s.loadKey(ctx, keyWishlist, &wishlist) && wishlist != nil {
		s.state = reduceAuth(s.state, loadWishlist{wishlist: wishlist})
	}
	if s.loadKey(ctx, keyOrders, &orders) && orders != nil {
		s.state = reduceAuth(s.state, loadOrders{orders: orders})
	}
	s.persistUserLocked(ctx)
}

// Logout clears the session. The user key is removed and the wishlist and
// order keys are rewritten empty, matching how the persistence effects of
// the original system reacted to the logout transition.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduceAuth(s.state, logout{})
	s.persistUserLocked(ctx)
	s.persistWishlistLocked(ctx)
	s.persistOrdersLocked(ctx)
	s.logger.Info("User logged out")
}

// AddToWishlist is idempotent; adding a member twice keeps one entry.
func (s *AuthStore) AddToWishlist(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduceAuth(s.state, addToWishlist{productID: productID})
	s.persistWishlistLocked(ctx)
}

// RemoveFromWishlist on a non-member is a no-op.
func (s *AuthStore) RemoveFromWishlist(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduceAuth(s.state, removeFromWishlist{productID: productID})
	s.persistWishlistLocked(ctx)
}

func (s *AuthStore) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.state.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// AddOrder prepends the order to the history. The checkout collaborator
// must call this before clearing the cart; the item snapshot is copied
// here so later cart mutation cannot reach the stored order.
func (s *AuthStore) AddOrder(ctx context.Context, order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduceAuth(s.state, addOrder{order: order})
	s.persistOrdersLocked(ctx)
	s.logger.Info("Order recorded",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
	)
}

func (s *AuthStore) findCredential(email string) (credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cred := range s.creds {
		if cred.email == email {
			return cred, true
		}
	}
	return credential{}, false
}

func (s *AuthStore) State() models.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state
	if s.state.User != nil {
		user := *s.state.User
		snapshot.User = &user
	}
	snapshot.Wishlist = append([]string(nil), s.state.Wishlist...)
	snapshot.Orders = append([]models.Order(nil), s.state.Orders...)
	return snapshot
}

func (s *AuthStore) User() *models.User {
	return s.State().User
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

func (s *AuthStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

func (s *AuthStore) Wishlist() []string {
	return s.State().Wishlist
}

func (s *AuthStore) Orders() []models.Order {
	return s.State().Orders
}

// Persistence effects run synchronously right after a committed
// transition. Failures are logged and swallowed: losing a write degrades
// durability, never the in-memory session.

func (s *AuthStore) persistUserLocked(ctx context.Context) {
	if s.state.User == nil {
		if err := s.gateway.Remove(ctx, keyUser); err != nil {
			s.logger.Warn("Failed to remove persisted user", zap.Error(err))
		}
		return
	}
	s.persistLocked(ctx, keyUser, s.state.User)
}

func (s *AuthStore) persistWishlistLocked(ctx context.Context) {
	s.persistLocked(ctx, keyWishlist, s.state.Wishlist)
}

func (s *AuthStore) persistOrdersLocked(ctx context.Context) {
	s.persistLocked(ctx, keyOrders, s.state.Orders)
}

func (s *AuthStore) persistLocked(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("Failed to marshal persisted state", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.gateway.Set(ctx, key, data); err != nil {
		s.logger.Warn("Failed to write persisted state", zap.String("key", key), zap.Error(err))
	}
}

func reduceAuth(state models.AuthState, action authAction) models.AuthState {
	switch a := action.(type) {
	case loginStart:
		state.IsLoading = true

	case loginSuccess:
		user := a.user
		state.User = &user
		state.IsAuthenticated = true
		state.IsLoading = false

	case loginFailure:
		state.User = nil
		state.IsAuthenticated = false
		state.IsLoading = false

	case logout:
		state = models.AuthState{
			Wishlist: []string{},
			Orders:   []models.Order{},
		}

	case loadUser:
		state.User = a.user
		state.IsAuthenticated = a.user != nil
		state.IsLoading = false

	case addToWishlist:
		for _, id := range state.Wishlist {
			if id == a.productID {
				return state
			}
		}
		state.Wishlist = append(append([]string(nil), state.Wishlist...), a.productID)

	case removeFromWishlist:
		wishlist := make([]string, 0, len(state.Wishlist))
		for _, id := range state.Wishlist {
			if id != a.productID {
				wishlist = append(wishlist, id)
			}
		}
		state.Wishlist = wishlist

	case addOrder:
		order := a.order
		order.Items = append([]models.CartItem(nil), a.order.Items...)
		orders := make([]models.Order, 0, len(state.Orders)+1)
		orders = append(orders, order)
		orders = append(orders, state.Orders...)
		state.Orders = orders

	case loadWishlist:
		state.Wishlist = a.wishlist

	case loadOrders:
		state.Orders = a.orders
	}

	return state
}
