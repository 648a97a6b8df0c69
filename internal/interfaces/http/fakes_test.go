package http_test

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, con la misma semántica que
// los adaptadores de MongoDB: Find* devuelve (nil, nil) si no hay documento y
// Delete retorna ErrNotFound si el id no existe.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.User(nil), r.users...), nil
}

type fakeCollectionRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Collection
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{items: map[string]*entity.Collection{}}
}

func (r *fakeCollectionRepo) Create(_ context.Context, c *entity.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	cp := *c
	r.items[c.ID.Hex()] = &cp
	return nil
}

func (r *fakeCollectionRepo) FindByID(_ context.Context, id string) (*entity.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCollectionRepo) Replace(_ context.Context, c *entity.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID.Hex()]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.items[c.ID.Hex()] = &cp
	return nil
}

func (r *fakeCollectionRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*entity.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "title":
			c.Title = s
		case "description":
			c.Description = s
		case "category":
			c.Category = s
		case "period":
			c.Period = s
		case "origin":
			c.Origin = s
		case "material":
			c.Material = s
		case "image":
			c.Image = s
		case "status":
			c.Status = s
		}
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCollectionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCollectionRepo) List(_ context.Context, f repository.CollectionFilter) ([]*entity.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Collection
	for _, c := range r.items {
		if c.Status != "active" {
			continue
		}
		if f.Category != "" && f.Category != "All" && c.Category != f.Category {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCollectionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type fakeEventRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo { return &fakeEventRepo{items: map[string]*entity.Event{}} }

func (r *fakeEventRepo) Create(_ context.Context, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	cp := *e
	r.items[e.ID.Hex()] = &cp
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEventRepo) List(_ context.Context) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Event
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeEventRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type fakeNewsRepo struct {
	mu    sync.Mutex
	items []*entity.News
}

func (r *fakeNewsRepo) Create(_ context.Context, n *entity.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	cp := *n
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeNewsRepo) ListPublished(_ context.Context) ([]*entity.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.News
	for _, n := range r.items {
		if n.Status != "published" {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishDate.After(out[j].PublishDate) })
	return out, nil
}

func (r *fakeNewsRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type fakeContactRepo struct {
	mu    sync.Mutex
	items []*entity.Contact
}

func (r *fakeContactRepo) Create(_ context.Context, c *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeContactRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.items {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeExhibitionRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Exhibition
}

func newFakeExhibitionRepo() *fakeExhibitionRepo {
	return &fakeExhibitionRepo{items: map[string]*entity.Exhibition{}}
}

func (r *fakeExhibitionRepo) Create(_ context.Context, e *entity.Exhibition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	cp := *e
	r.items[e.ID.Hex()] = &cp
	return nil
}

func (r *fakeExhibitionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeExhibitionRepo) List(_ context.Context) ([]*entity.Exhibition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Exhibition
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeExhibitionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}
