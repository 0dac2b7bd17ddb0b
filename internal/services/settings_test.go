package services

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestSettingsEmptyByDefault(t *testing.T) {
    env := newTestEnv(t)
    values, err := env.settingsSvc.Get(context.Background())
    require.NoError(t, err)
    assert.Empty(t, values)
}

func TestSettingsUpsertOverwrites(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()

    _, err := env.settingsSvc.Update(ctx, map[string]any{"theme": "dark", "term": "2024-2"})
    require.NoError(t, err)

    _, err = env.settingsSvc.Update(ctx, map[string]any{"theme": "light"})
    require.NoError(t, err)

    values, err := env.settingsSvc.Get(ctx)
    require.NoError(t, err)
    assert.Equal(t, map[string]any{"theme": "light"}, values)
}
