package gormrepo

import (
    "context"

    "gorm.io/gorm"

    "github.com/preceptoria/backend/internal/models"
)

type News struct {
    db *gorm.DB
}

func NewNews(db *gorm.DB) *News {
    return &News{db: db}
}

func (r *News) List(ctx context.Context) ([]models.NewsItem, error) {
    var items []models.NewsItem
    err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
    return items, translate(err)
}

func (r *News) Get(ctx context.Context, id uint) (models.NewsItem, error) {
    var n models.NewsItem
    err := r.db.WithContext(ctx).First(&n, id).Error
    return n, translate(err)
}

func (r *News) Create(ctx context.Context, n *models.NewsItem) error {
    return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *News) Update(ctx context.Context, n *models.NewsItem) error {
    return translate(r.db.WithContext(ctx).Save(n).Error)
}

func (r *News) Delete(ctx context.Context, id uint) error {
    return translate(r.db.WithContext(ctx).Delete(&models.NewsItem{}, id).Error)
}
