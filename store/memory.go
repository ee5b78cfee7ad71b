package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joya-jewelry/server/models"
)

// The memory stores mirror the Mongo implementations' semantics, including
// the atomicity of the profile upsert (a mutex stands in for the storage
// engine's single-document atomicity). Used by tests and local development
// without a Mongo instance.

// MemoryUserStore is an in-memory UserStore.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by email
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (m *MemoryUserStore) UpsertProfile(ctx context.Context, email string, fields bson.M) (UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		u = models.User{ID: primitive.NewObjectID(), Email: email}
	}
	before := u
	u.Email = email
	applyProfileFields(&u, fields)
	m.users[email] = u

	if !ok {
		return UpsertResult{UpsertedCount: 1, UpsertedID: u.ID.Hex()}, nil
	}
	res := UpsertResult{MatchedCount: 1}
	if before != u {
		res.ModifiedCount = 1
	}
	return res, nil
}

func applyProfileFields(u *models.User, fields bson.M) {
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "name":
			u.Name = s
		case "photoURL":
			u.PhotoURL = s
		case "gender":
			u.Gender = s
		case "phone":
			u.Phone = s
		case "address":
			u.Address = s
		}
	}
}

func (m *MemoryUserStore) List(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (m *MemoryUserStore) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := []models.User{}
	if u, ok := m.users[email]; ok {
		users = append(users, u)
	}
	return users, nil
}

// MemoryProductStore is an in-memory ProductStore.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{}
}

func (m *MemoryProductStore) Insert(ctx context.Context, p models.Product) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.products = append(m.products, p)
	return p.ID.Hex(), nil
}

func (m *MemoryProductStore) List(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Product{}, m.products...), nil
}

func (m *MemoryProductStore) ByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == oid {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
}

func (m *MemoryProductStore) ByAddedBy(ctx context.Context, email string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []models.Product{}
	for _, p := range m.products {
		if p.AddedBy == email {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *MemoryProductStore) NewArrivals(ctx context.Context, limit int64) ([]models.Product, error) {
	m.mu.RLock()
	products := append([]models.Product{}, m.products...)
	m.mu.RUnlock()

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].DateAdded.After(products[j].DateAdded)
	})
	return truncate(products, limit), nil
}

func (m *MemoryProductStore) Trending(ctx context.Context, limit int64) ([]models.Product, error) {
	m.mu.RLock()
	products := append([]models.Product{}, m.products...)
	m.mu.RUnlock()

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Views > products[j].Views
	})
	return truncate(products, limit), nil
}

func truncate(products []models.Product, limit int64) []models.Product {
	if limit > 0 && int64(len(products)) > limit {
		return products[:limit]
	}
	return products
}

// MemoryBrandStore is an in-memory BrandStore. Brands have no write
// endpoint, so it is populated via Seed.
type MemoryBrandStore struct {
	mu     sync.RWMutex
	brands []models.Brand
}

func NewMemoryBrandStore() *MemoryBrandStore {
	return &MemoryBrandStore{}
}

func (m *MemoryBrandStore) Seed(brands []models.Brand) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.brands = append([]models.Brand{}, brands...)
}

func (m *MemoryBrandStore) List(ctx context.Context) ([]models.Brand, error) {
	m.mu.RLock()
	brands := append([]models.Brand{}, m.brands...)
	m.mu.RUnlock()

	sort.SliceStable(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands, nil
}
