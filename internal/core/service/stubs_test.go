package service

import (
	"context"
	"sort"

	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Profiles = append([]domain.Profile(nil), u.Profiles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByParams(_ context.Context, filter domain.UserFilter) (*domain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		u := r.users[id]
		if filter.ID != nil && u.ID != *filter.ID {
			continue
		}
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.Name != "" && u.Name != filter.Name {
			continue
		}
		return cloneUser(u), nil
	}
	return nil, domain.ErrNoMatch
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, int64, error) {
	var total, active int64
	for _, u := range r.users {
		total++
		if u.Active {
			active++
		}
	}
	return total, active, nil
}

func (r *stubUserRepo) CountWithProfile(_ context.Context, profileID int64) (int64, error) {
	var n int64
	for _, u := range r.users {
		for _, p := range u.Profiles {
			if p.ID == profileID {
				n++
				break
			}
		}
	}
	return n, nil
}

// stubProfileRepo is an in-memory ports.ProfileRepository.
type stubProfileRepo struct {
	profiles map[int64]domain.Profile
	nextID   int64
}

func newStubProfileRepo(seed ...domain.Profile) *stubProfileRepo {
	r := &stubProfileRepo{profiles: make(map[int64]domain.Profile)}
	for _, p := range seed {
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.profiles[p.ID] = p
	}
	return r
}

func (r *stubProfileRepo) Create(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	for _, existing := range r.profiles {
		if existing.Name == profile.Name {
			return nil, domain.ErrProfileExists
		}
	}
	r.nextID++
	p := *profile
	p.ID = r.nextID
	r.profiles[p.ID] = p
	return &p, nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id int64) (*domain.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) FindByParams(_ context.Context, filter domain.ProfileFilter) (*domain.Profile, error) {
	ids := make([]int64, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		p := r.profiles[id]
		if filter.ID != nil && p.ID != *filter.ID {
			continue
		}
		if filter.Name != "" && p.Name != filter.Name {
			continue
		}
		return &p, nil
	}
	return nil, domain.ErrNoMatch
}

func (r *stubProfileRepo) FindByIDs(_ context.Context, ids []int64) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProfileRepo) FindAll(_ context.Context) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(r.profiles))
	ids := make([]int64, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		out = append(out, r.profiles[id])
	}
	return out, nil
}

func (r *stubProfileRepo) Update(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if _, ok := r.profiles[profile.ID]; !ok {
		return nil, domain.ErrProfileNotFound
	}
	r.profiles[profile.ID] = *profile
	p := *profile
	return &p, nil
}

func (r *stubProfileRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

func (r *stubProfileRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.profiles)), nil
}

// stubDenylist records revoked tokens in memory.
type stubDenylist struct {
	revoked map[string]bool
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]bool)}
}

func (d *stubDenylist) Revoke(_ context.Context, token string) error {
	d.revoked[token] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	return d.revoked[token], nil
}

// stubStatsCache is an in-memory ports.StatsCache.
type stubStatsCache struct {
	snap *ports.MetricsSnapshot
	sets int
}

func (c *stubStatsCache) Get(_ context.Context) (*ports.MetricsSnapshot, error) {
	return c.snap, nil
}

func (c *stubStatsCache) Set(_ context.Context, snap *ports.MetricsSnapshot) error {
	c.snap = snap
	c.sets++
	return nil
}
