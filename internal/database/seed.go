package database

import (
    "log"

    "gorm.io/gorm"

    "github.com/preceptoria/backend/internal/config"
    "github.com/preceptoria/backend/internal/models"
)

// SeedAdmin creates the initial admin login (by document number) when no admin
// exists yet.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
    var count int64
    if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    admin := models.User{
        Name:     cfg.AdminName,
        Document: cfg.AdminDocument,
        Role:     models.RoleAdmin,
    }
    if err := db.Create(&admin).Error; err != nil {
        return err
    }
    log.Println("Seeded initial admin, document:", admin.Document)
    return nil
}

// SeedDemo loads a small demo dataset on an empty database. Gated by
// SEED_DEMO, intended for local development only.
func SeedDemo(db *gorm.DB, cfg *config.Config) error {
    if !cfg.SeedDemo {
        return nil
    }
    var count int64
    if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    preceptor := models.User{Name: "Laura Vega", Document: "20111222", Role: models.RolePreceptor}
    if err := db.Create(&preceptor).Error; err != nil {
        return err
    }

    students := []models.User{
        {Name: "Ana Torres", Document: "45111222", Role: models.RoleStudent, CourseGroup: "3A"},
        {Name: "Bruno Díaz", Document: "45333444", Role: models.RoleStudent, CourseGroup: "3A"},
        {Name: "Carla Ruiz", Document: "45555666", Role: models.RoleStudent, CourseGroup: "3B"},
    }
    if err := db.Create(&students).Error; err != nil {
        return err
    }

    course := models.Course{
        Name:        "3A Mathematics",
        Subject:     "Mathematics",
        Classroom:   "12",
        Schedule:    6,
        MaxAbsences: 15,
        IconURL:     "/icons/course.svg",
    }
    if err := db.Create(&course).Error; err != nil {
        return err
    }
    memberships := []models.CourseStudent{
        {StudentID: students[0].ID, CourseID: course.ID},
        {StudentID: students[1].ID, CourseID: course.ID},
    }
    if err := db.Create(&memberships).Error; err != nil {
        return err
    }

    log.Println("Seeded demo data")
    return nil
}
