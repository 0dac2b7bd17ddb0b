package memory

import (
    "context"
    "sort"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type News struct {
    db *DB
}

func NewNews(db *DB) *News {
    return &News{db: db}
}

func (r *News) List(_ context.Context) ([]models.NewsItem, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    items := make([]models.NewsItem, 0, len(r.db.news))
    for _, n := range r.db.news {
        items = append(items, n)
    }
    sort.Slice(items, func(i, j int) bool {
        if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
            return items[i].CreatedAt.After(items[j].CreatedAt)
        }
        return items[i].ID > items[j].ID
    })
    return items, nil
}

func (r *News) Get(_ context.Context, id uint) (models.NewsItem, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    n, ok := r.db.news[id]
    if !ok {
        return models.NewsItem{}, repository.ErrNotFound
    }
    return n, nil
}

func (r *News) Create(_ context.Context, n *models.NewsItem) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    n.ID = r.db.nextNews()
    now := time.Now().UTC()
    n.CreatedAt, n.UpdatedAt = now, now
    r.db.news[n.ID] = *n
    return nil
}

func (r *News) Update(_ context.Context, n *models.NewsItem) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    if _, ok := r.db.news[n.ID]; !ok {
        return repository.ErrNotFound
    }
    n.UpdatedAt = time.Now().UTC()
    r.db.news[n.ID] = *n
    return nil
}

func (r *News) Delete(_ context.Context, id uint) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    delete(r.db.news, id)
    return nil
}
