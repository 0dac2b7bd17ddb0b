package services

import (
    "context"
    "encoding/json"
    "errors"

    "gorm.io/datatypes"

    "github.com/preceptoria/backend/internal/repository"
)

const settingsKey = "app_settings"

// SettingsService stores one free-form JSON document. No active feature reads
// it (absence limits moved to Course); kept for parity with the admin UI.
type SettingsService struct {
    settings repository.Settings
}

func NewSettingsService(settings repository.Settings) *SettingsService {
    return &SettingsService{settings: settings}
}

func (s *SettingsService) Get(ctx context.Context) (map[string]any, error) {
    stored, err := s.settings.Get(ctx, settingsKey)
    if errors.Is(err, repository.ErrNotFound) {
        return map[string]any{}, nil
    }
    if err != nil {
        return nil, wrapRepo(err, "settings", "loading settings")
    }
    values := map[string]any{}
    if len(stored.Value) > 0 {
        if err := json.Unmarshal(stored.Value, &values); err != nil {
            return nil, BackendError{Op: "decoding settings", Err: err}
        }
    }
    return values, nil
}

func (s *SettingsService) Update(ctx context.Context, values map[string]any) (map[string]any, error) {
    data, err := json.Marshal(values)
    if err != nil {
        return nil, ValidationError{Message: "settings must be a JSON object"}
    }
    if err := s.settings.Upsert(ctx, settingsKey, datatypes.JSON(data)); err != nil {
        return nil, wrapRepo(err, "settings", "saving settings")
    }
    return values, nil
}
