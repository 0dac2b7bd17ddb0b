package gormrepo

import (
    "context"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/preceptoria/backend/internal/models"
)

type Attendance struct {
    db *gorm.DB
}

func NewAttendance(db *gorm.DB) *Attendance {
    return &Attendance{db: db}
}

func (r *Attendance) Get(ctx context.Context, id uint) (models.Attendance, error) {
    var a models.Attendance
    err := r.db.WithContext(ctx).First(&a, id).Error
    return a, translate(err)
}

func (r *Attendance) ListForStudent(ctx context.Context, studentID uint) ([]models.Attendance, error) {
    var records []models.Attendance
    err := r.db.WithContext(ctx).
        Where("student_id = ?", studentID).
        Order("date DESC").
        Find(&records).Error
    return records, translate(err)
}

func (r *Attendance) ListJustifiable(ctx context.Context, studentID uint) ([]models.Attendance, error) {
    var records []models.Attendance
    err := r.db.WithContext(ctx).
        Where("student_id = ? AND status IN ?", studentID, []string{models.StatusAbsent, models.StatusLate}).
        Order("date DESC").
        Find(&records).Error
    return records, translate(err)
}

func (r *Attendance) ListForDate(ctx context.Context, date string) ([]models.Attendance, error) {
    var records []models.Attendance
    err := r.db.WithContext(ctx).Where("date = ?", date).Find(&records).Error
    return records, translate(err)
}

func (r *Attendance) Upsert(ctx context.Context, a *models.Attendance) error {
    err := r.db.WithContext(ctx).
        Clauses(clause.OnConflict{
            Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}, {Name: "date"}},
            DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
        }).
        Create(a).Error
    if err != nil {
        return translate(err)
    }
    // Re-read so the caller sees the stored row (the conflict path keeps the
    // existing id and certificate columns).
    var stored models.Attendance
    err = r.db.WithContext(ctx).
        Where("student_id = ? AND course_id = ? AND date = ?", a.StudentID, a.CourseID, a.Date).
        First(&stored).Error
    if err != nil {
        return translate(err)
    }
    *a = stored
    return nil
}

func (r *Attendance) Update(ctx context.Context, a *models.Attendance) error {
    return translate(r.db.WithContext(ctx).Save(a).Error)
}

func (r *Attendance) Delete(ctx context.Context, studentID uint, date string, courseID uint) error {
    err := r.db.WithContext(ctx).
        Where("student_id = ? AND date = ? AND course_id = ?", studentID, date, courseID).
        Delete(&models.Attendance{}).Error
    return translate(err)
}

func (r *Attendance) ListPendingCertificates(ctx context.Context) ([]models.Attendance, error) {
    var records []models.Attendance
    err := r.db.WithContext(ctx).
        Where("certificate_status = ? AND certificate_url IS NOT NULL", models.CertificatePending).
        Order("date DESC").
        Find(&records).Error
    return records, translate(err)
}

func (r *Attendance) CountByStatus(ctx context.Context, studentID uint, status string) (int64, error) {
    var count int64
    err := r.db.WithContext(ctx).
        Model(&models.Attendance{}).
        Where("student_id = ? AND status = ?", studentID, status).
        Count(&count).Error
    return count, translate(err)
}
