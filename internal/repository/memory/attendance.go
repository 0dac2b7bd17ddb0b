package memory

import (
    "context"
    "sort"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type Attendance struct {
    db *DB
}

func NewAttendance(db *DB) *Attendance {
    return &Attendance{db: db}
}

func (r *Attendance) Get(_ context.Context, id uint) (models.Attendance, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    a, ok := r.db.attendance[id]
    if !ok {
        return models.Attendance{}, repository.ErrNotFound
    }
    return a, nil
}

func (r *Attendance) ListForStudent(_ context.Context, studentID uint) ([]models.Attendance, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    records := []models.Attendance{}
    for _, a := range r.db.attendance {
        if a.StudentID == studentID {
            records = append(records, a)
        }
    }
    sortByDateDesc(records)
    return records, nil
}

func (r *Attendance) ListJustifiable(_ context.Context, studentID uint) ([]models.Attendance, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    records := []models.Attendance{}
    for _, a := range r.db.attendance {
        if a.StudentID == studentID && (a.Status == models.StatusAbsent || a.Status == models.StatusLate) {
            records = append(records, a)
        }
    }
    sortByDateDesc(records)
    return records, nil
}

func (r *Attendance) ListForDate(_ context.Context, date string) ([]models.Attendance, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    records := []models.Attendance{}
    for _, a := range r.db.attendance {
        if a.Date == models.Date(date) {
            records = append(records, a)
        }
    }
    return records, nil
}

func (r *Attendance) Upsert(_ context.Context, a *models.Attendance) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    now := time.Now().UTC()
    for id, existing := range r.db.attendance {
        if existing.StudentID == a.StudentID && existing.CourseID == a.CourseID && existing.Date == a.Date {
            existing.Status = a.Status
            existing.UpdatedAt = now
            r.db.attendance[id] = existing
            *a = existing
            return nil
        }
    }
    a.ID = r.db.nextAttendance()
    a.CreatedAt, a.UpdatedAt = now, now
    r.db.attendance[a.ID] = *a
    return nil
}

func (r *Attendance) Update(_ context.Context, a *models.Attendance) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    if _, ok := r.db.attendance[a.ID]; !ok {
        return repository.ErrNotFound
    }
    a.UpdatedAt = time.Now().UTC()
    r.db.attendance[a.ID] = *a
    return nil
}

func (r *Attendance) Delete(_ context.Context, studentID uint, date string, courseID uint) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    for id, a := range r.db.attendance {
        if a.StudentID == studentID && a.Date == models.Date(date) && a.CourseID == courseID {
            delete(r.db.attendance, id)
        }
    }
    return nil
}

func (r *Attendance) ListPendingCertificates(_ context.Context) ([]models.Attendance, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    records := []models.Attendance{}
    for _, a := range r.db.attendance {
        if a.HasPendingCertificate() && a.CertificateURL != nil {
            records = append(records, a)
        }
    }
    sortByDateDesc(records)
    return records, nil
}

func (r *Attendance) CountByStatus(_ context.Context, studentID uint, status string) (int64, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    var count int64
    for _, a := range r.db.attendance {
        if a.StudentID == studentID && a.Status == status {
            count++
        }
    }
    return count, nil
}

func sortByDateDesc(records []models.Attendance) {
    sort.Slice(records, func(i, j int) bool {
        if records[i].Date != records[j].Date {
            return records[i].Date > records[j].Date
        }
        return records[i].ID > records[j].ID
    })
}
