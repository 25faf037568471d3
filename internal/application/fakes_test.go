package application

import (
	"context"
	"sync"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// fakeUserRepo is a map-backed UserRepository for service tests.
type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: make(map[string]*entity.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email.Equals(u.Email) {
			return apperrors.EmailAlreadyExists("email already registered")
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.UserNotFound("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, apperrors.UserNotFound("user not found")
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return apperrors.UserNotFound("user not found")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return apperrors.UserNotFound("user not found")
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

// fakeCardRepo is a map-backed CardRepository.
type fakeCardRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{byID: make(map[string]*entity.Card)}
}

func (r *fakeCardRepo) Create(_ context.Context, c *entity.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCardRepo) GetByID(_ context.Context, id string) (*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("card not found")
	}
	return c, nil
}

func (r *fakeCardRepo) Update(_ context.Context, c *entity.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return apperrors.NotFound("card not found")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("card not found")
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCardRepo) List(_ context.Context, f repository.CardFilter) ([]*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Card
	for _, c := range r.byID {
		if f.RecipientID != "" && c.RecipientID != f.RecipientID {
			continue
		}
		if f.TeamID != "" && c.TeamID != f.TeamID {
			continue
		}
		if f.CategoryID != "" && c.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// fakeTeamRepo and fakeCategoryRepo resolve only seeded ids.
type fakeTeamRepo struct {
	byID map[string]*entity.Team
}

func (r *fakeTeamRepo) Create(_ context.Context, t *entity.Team) error {
	r.byID[t.ID] = t
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id string) (*entity.Team, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("team not found")
	}
	return t, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*entity.Team, error) {
	out := make([]*entity.Team, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("category not found")
	}
	return c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

// testUser builds an approved user with the given role.
func testUser(id, email string, role entity.Role) *entity.User {
	u, err := entity.NewUser(entity.NewUserInput{
		ID:        id,
		Email:     email,
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		panic(err)
	}
	u.Role = role
	u.ApprovalStatus = entity.ApprovalApproved
	return u
}
