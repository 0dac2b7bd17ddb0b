package memory

import (
    "context"
    "sort"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type Users struct {
    db *DB
}

func NewUsers(db *DB) *Users {
    return &Users{db: db}
}

func (r *Users) GetByID(_ context.Context, id uint) (models.User, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    u, ok := r.db.users[id]
    if !ok {
        return models.User{}, repository.ErrNotFound
    }
    return u, nil
}

func (r *Users) GetByDocument(_ context.Context, document string) (models.User, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    for _, u := range r.db.users {
        if u.Document == document {
            return u, nil
        }
    }
    return models.User{}, repository.ErrNotFound
}

func (r *Users) List(_ context.Context) ([]models.User, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    users := make([]models.User, 0, len(r.db.users))
    for _, u := range r.db.users {
        users = append(users, u)
    }
    sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
    return users, nil
}

func (r *Users) ListByRole(_ context.Context, role string) ([]models.User, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    users := []models.User{}
    for _, u := range r.db.users {
        if u.Role == role {
            users = append(users, u)
        }
    }
    sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
    return users, nil
}

func (r *Users) Create(_ context.Context, u *models.User) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    for _, existing := range r.db.users {
        if existing.Document == u.Document {
            return repository.ErrDuplicate
        }
    }
    u.ID = r.db.nextUser()
    now := time.Now().UTC()
    u.CreatedAt, u.UpdatedAt = now, now
    r.db.users[u.ID] = *u
    return nil
}

func (r *Users) Update(_ context.Context, u *models.User) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    if _, ok := r.db.users[u.ID]; !ok {
        return repository.ErrNotFound
    }
    for _, existing := range r.db.users {
        if existing.ID != u.ID && existing.Document == u.Document {
            return repository.ErrDuplicate
        }
    }
    u.UpdatedAt = time.Now().UTC()
    r.db.users[u.ID] = *u
    return nil
}

func (r *Users) Delete(_ context.Context, id uint) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    delete(r.db.users, id)
    return nil
}

func (r *Users) ListCourseGroups(_ context.Context) ([]string, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    seen := map[string]struct{}{}
    for _, u := range r.db.users {
        if u.Role == models.RoleStudent && u.CourseGroup != "" {
            seen[u.CourseGroup] = struct{}{}
        }
    }
    groups := make([]string, 0, len(seen))
    for g := range seen {
        groups = append(groups, g)
    }
    sort.Strings(groups)
    return groups, nil
}
