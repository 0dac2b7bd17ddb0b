package memory

import (
    "context"
    "time"

    "gorm.io/datatypes"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type Settings struct {
    db *DB
}

func NewSettings(db *DB) *Settings {
    return &Settings{db: db}
}

func (r *Settings) Get(_ context.Context, key string) (models.Setting, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    s, ok := r.db.settings[key]
    if !ok {
        return models.Setting{}, repository.ErrNotFound
    }
    return s, nil
}

func (r *Settings) Upsert(_ context.Context, key string, value datatypes.JSON) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    now := time.Now().UTC()
    if existing, ok := r.db.settings[key]; ok {
        existing.Value = value
        existing.UpdatedAt = now
        r.db.settings[key] = existing
        return nil
    }
    r.db.settings[key] = models.Setting{
        ID:        r.db.nextSetting(),
        Key:       key,
        Value:     value,
        CreatedAt: now,
        UpdatedAt: now,
    }
    return nil
}
