package gormrepo

import (
    "context"

    "gorm.io/gorm"

    "github.com/preceptoria/backend/internal/models"
)

type Courses struct {
    db *gorm.DB
}

func NewCourses(db *gorm.DB) *Courses {
    return &Courses{db: db}
}

func (r *Courses) List(ctx context.Context) ([]models.Course, error) {
    var courses []models.Course
    if err := r.db.WithContext(ctx).Order("name").Find(&courses).Error; err != nil {
        return nil, translate(err)
    }
    for i := range courses {
        ids, err := r.StudentIDs(ctx, courses[i].ID)
        if err != nil {
            return nil, err
        }
        courses[i].Students = ids
    }
    return courses, nil
}

func (r *Courses) Get(ctx context.Context, id uint) (models.Course, error) {
    var c models.Course
    if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
        return models.Course{}, translate(err)
    }
    ids, err := r.StudentIDs(ctx, c.ID)
    if err != nil {
        return models.Course{}, err
    }
    c.Students = ids
    return c, nil
}

func (r *Courses) Create(ctx context.Context, c *models.Course) error {
    return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *Courses) Update(ctx context.Context, c *models.Course) error {
    return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *Courses) Delete(ctx context.Context, id uint) error {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("course_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
            return err
        }
        if err := tx.Where("course_id = ?", id).Delete(&models.CourseStudent{}).Error; err != nil {
            return err
        }
        return tx.Delete(&models.Course{}, id).Error
    })
    return translate(err)
}

func (r *Courses) ReplaceStudents(ctx context.Context, courseID uint, studentIDs []uint) error {
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("course_id = ?", courseID).Delete(&models.CourseStudent{}).Error; err != nil {
            return err
        }
        if len(studentIDs) == 0 {
            return nil
        }
        rows := make([]models.CourseStudent, 0, len(studentIDs))
        for _, sid := range studentIDs {
            rows = append(rows, models.CourseStudent{StudentID: sid, CourseID: courseID})
        }
        return tx.Create(&rows).Error
    })
    return translate(err)
}

func (r *Courses) StudentIDs(ctx context.Context, courseID uint) ([]uint, error) {
    ids := []uint{}
    err := r.db.WithContext(ctx).
        Model(&models.CourseStudent{}).
        Where("course_id = ?", courseID).
        Pluck("student_id", &ids).Error
    return ids, translate(err)
}

func (r *Courses) ListForStudent(ctx context.Context, studentID uint) ([]models.Course, error) {
    ids, err := r.CourseIDsForStudent(ctx, studentID)
    if err != nil {
        return nil, err
    }
    if len(ids) == 0 {
        return []models.Course{}, nil
    }
    var courses []models.Course
    if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name").Find(&courses).Error; err != nil {
        return nil, translate(err)
    }
    for i := range courses {
        sids, err := r.StudentIDs(ctx, courses[i].ID)
        if err != nil {
            return nil, err
        }
        courses[i].Students = sids
    }
    return courses, nil
}

func (r *Courses) CourseIDsForStudent(ctx context.Context, studentID uint) ([]uint, error) {
    ids := []uint{}
    err := r.db.WithContext(ctx).
        Model(&models.CourseStudent{}).
        Where("student_id = ?", studentID).
        Pluck("course_id", &ids).Error
    return ids, translate(err)
}

func (r *Courses) ListSubjects(ctx context.Context) ([]string, error) {
    var subjects []string
    err := r.db.WithContext(ctx).
        Model(&models.Course{}).
        Distinct().
        Order("subject").
        Pluck("subject", &subjects).Error
    return subjects, translate(err)
}
