package memory

import (
    "context"
    "sort"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type Courses struct {
    db *DB
}

func NewCourses(db *DB) *Courses {
    return &Courses{db: db}
}

func (r *Courses) List(_ context.Context) ([]models.Course, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    courses := make([]models.Course, 0, len(r.db.courses))
    for _, c := range r.db.courses {
        c.Students = r.db.studentIDsLocked(c.ID)
        courses = append(courses, c)
    }
    sort.Slice(courses, func(i, j int) bool { return courses[i].Name < courses[j].Name })
    return courses, nil
}

func (r *Courses) Get(_ context.Context, id uint) (models.Course, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    c, ok := r.db.courses[id]
    if !ok {
        return models.Course{}, repository.ErrNotFound
    }
    c.Students = r.db.studentIDsLocked(id)
    return c, nil
}

func (r *Courses) Create(_ context.Context, c *models.Course) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    c.ID = r.db.nextCourse()
    now := time.Now().UTC()
    c.CreatedAt, c.UpdatedAt = now, now
    stored := *c
    stored.Students = nil
    r.db.courses[c.ID] = stored
    return nil
}

func (r *Courses) Update(_ context.Context, c *models.Course) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    if _, ok := r.db.courses[c.ID]; !ok {
        return repository.ErrNotFound
    }
    c.UpdatedAt = time.Now().UTC()
    stored := *c
    stored.Students = nil
    r.db.courses[c.ID] = stored
    return nil
}

func (r *Courses) Delete(_ context.Context, id uint) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    delete(r.db.courses, id)
    kept := r.db.memberships[:0]
    for _, m := range r.db.memberships {
        if m.CourseID != id {
            kept = append(kept, m)
        }
    }
    r.db.memberships = kept
    for aid, a := range r.db.attendance {
        if a.CourseID == id {
            delete(r.db.attendance, aid)
        }
    }
    return nil
}

func (r *Courses) ReplaceStudents(_ context.Context, courseID uint, studentIDs []uint) error {
    r.db.mu.Lock()
    defer r.db.mu.Unlock()
    kept := r.db.memberships[:0]
    for _, m := range r.db.memberships {
        if m.CourseID != courseID {
            kept = append(kept, m)
        }
    }
    r.db.memberships = kept
    for _, sid := range studentIDs {
        r.db.memberships = append(r.db.memberships, models.CourseStudent{
            StudentID: sid,
            CourseID:  courseID,
            CreatedAt: time.Now().UTC(),
        })
    }
    return nil
}

func (r *Courses) StudentIDs(_ context.Context, courseID uint) ([]uint, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    return r.db.studentIDsLocked(courseID), nil
}

func (r *Courses) ListForStudent(_ context.Context, studentID uint) ([]models.Course, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    courses := []models.Course{}
    for _, m := range r.db.memberships {
        if m.StudentID != studentID {
            continue
        }
        if c, ok := r.db.courses[m.CourseID]; ok {
            c.Students = r.db.studentIDsLocked(c.ID)
            courses = append(courses, c)
        }
    }
    sort.Slice(courses, func(i, j int) bool { return courses[i].Name < courses[j].Name })
    return courses, nil
}

func (r *Courses) CourseIDsForStudent(_ context.Context, studentID uint) ([]uint, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    ids := []uint{}
    for _, m := range r.db.memberships {
        if m.StudentID == studentID {
            ids = append(ids, m.CourseID)
        }
    }
    return ids, nil
}

func (r *Courses) ListSubjects(_ context.Context) ([]string, error) {
    r.db.mu.RLock()
    defer r.db.mu.RUnlock()
    seen := map[string]struct{}{}
    for _, c := range r.db.courses {
        seen[c.Subject] = struct{}{}
    }
    subjects := make([]string, 0, len(seen))
    for s := range seen {
        subjects = append(subjects, s)
    }
    sort.Strings(subjects)
    return subjects, nil
}

// studentIDsLocked requires db.mu held.
func (db *DB) studentIDsLocked(courseID uint) []uint {
    ids := []uint{}
    for _, m := range db.memberships {
        if m.CourseID == courseID {
            ids = append(ids, m.StudentID)
        }
    }
    return ids
}
