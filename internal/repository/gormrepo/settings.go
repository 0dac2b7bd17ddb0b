package gormrepo

import (
    "context"

    "gorm.io/datatypes"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/preceptoria/backend/internal/models"
)

type Settings struct {
    db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
    return &Settings{db: db}
}

func (r *Settings) Get(ctx context.Context, key string) (models.Setting, error) {
    var s models.Setting
    err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
    return s, translate(err)
}

func (r *Settings) Upsert(ctx context.Context, key string, value datatypes.JSON) error {
    s := models.Setting{Key: key, Value: value}
    err := r.db.WithContext(ctx).
        Clauses(clause.OnConflict{
            Columns:   []clause.Column{{Name: "key"}},
            DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
        }).
        Create(&s).Error
    return translate(err)
}
