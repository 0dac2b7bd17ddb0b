package gormrepo

import (
    "context"

    "gorm.io/gorm"

    "github.com/preceptoria/backend/internal/models"
)

type Users struct {
    db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
    return &Users{db: db}
}

func (r *Users) GetByID(ctx context.Context, id uint) (models.User, error) {
    var u models.User
    err := r.db.WithContext(ctx).First(&u, id).Error
    return u, translate(err)
}

func (r *Users) GetByDocument(ctx context.Context, document string) (models.User, error) {
    var u models.User
    err := r.db.WithContext(ctx).Where("document = ?", document).First(&u).Error
    return u, translate(err)
}

func (r *Users) List(ctx context.Context) ([]models.User, error) {
    var users []models.User
    err := r.db.WithContext(ctx).Order("name").Find(&users).Error
    return users, translate(err)
}

func (r *Users) ListByRole(ctx context.Context, role string) ([]models.User, error) {
    var users []models.User
    err := r.db.WithContext(ctx).Where("role = ?", role).Order("name").Find(&users).Error
    return users, translate(err)
}

func (r *Users) Create(ctx context.Context, u *models.User) error {
    return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *Users) Update(ctx context.Context, u *models.User) error {
    return translate(r.db.WithContext(ctx).Save(u).Error)
}

func (r *Users) Delete(ctx context.Context, id uint) error {
    return translate(r.db.WithContext(ctx).Delete(&models.User{}, id).Error)
}

func (r *Users) ListCourseGroups(ctx context.Context) ([]string, error) {
    var groups []string
    err := r.db.WithContext(ctx).
        Model(&models.User{}).
        Where("role = ? AND course IS NOT NULL AND course <> ''", models.RoleStudent).
        Distinct().
        Order("course").
        Pluck("course", &groups).Error
    return groups, translate(err)
}
