package services

import (
    "context"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

const defaultCourseIcon = "/icons/course.svg"

type CourseService struct {
    courses repository.Courses
    users   repository.Users
    cache   Cache
}

func NewCourseService(courses repository.Courses, users repository.Users, c Cache) *CourseService {
    return &CourseService{courses: courses, users: users, cache: c}
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
    courses, err := s.courses.List(ctx)
    return courses, wrapRepo(err, "courses", "listing courses")
}

func (s *CourseService) Get(ctx context.Context, id uint) (models.Course, error) {
    c, err := s.courses.Get(ctx, id)
    return c, wrapRepo(err, "course", "loading course")
}

func (s *CourseService) ForStudent(ctx context.Context, studentID uint) ([]models.Course, error) {
    courses, err := s.courses.ListForStudent(ctx, studentID)
    return courses, wrapRepo(err, "courses", "listing enrollments")
}

func (s *CourseService) validate(c models.Course) error {
    if c.Name == "" {
        return ValidationError{Field: "name", Message: "is required"}
    }
    if c.Subject == "" {
        return ValidationError{Field: "subject", Message: "is required"}
    }
    if c.MaxAbsences <= 0 {
        return ValidationError{Field: "maxAbsences", Message: "must be greater than zero"}
    }
    if c.Schedule < 0 {
        return ValidationError{Field: "schedule", Message: "cannot be negative"}
    }
    return nil
}

// checkStudents verifies every member id refers to an existing Student.
func (s *CourseService) checkStudents(ctx context.Context, ids []uint) error {
    for _, id := range ids {
        u, err := s.users.GetByID(ctx, id)
        if err != nil {
            return wrapRepo(err, "student", "loading student")
        }
        if u.Role != models.RoleStudent {
            return ValidationError{Field: "students", Message: "user is not a student"}
        }
    }
    return nil
}

func (s *CourseService) Create(ctx context.Context, c models.Course) (models.Course, error) {
    if err := s.validate(c); err != nil {
        return models.Course{}, err
    }
    if err := s.checkStudents(ctx, c.Students); err != nil {
        return models.Course{}, err
    }
    if c.IconURL == "" {
        c.IconURL = defaultCourseIcon
    }
    if err := s.courses.Create(ctx, &c); err != nil {
        return models.Course{}, wrapRepo(err, "course", "creating course")
    }
    if err := s.courses.ReplaceStudents(ctx, c.ID, c.Students); err != nil {
        return models.Course{}, wrapRepo(err, "course", "saving membership")
    }
    return s.Get(ctx, c.ID)
}

// Update overwrites the course and fully replaces its membership set.
func (s *CourseService) Update(ctx context.Context, c models.Course) (models.Course, error) {
    if err := s.validate(c); err != nil {
        return models.Course{}, err
    }
    existing, err := s.courses.Get(ctx, c.ID)
    if err != nil {
        return models.Course{}, wrapRepo(err, "course", "loading course")
    }
    if err := s.checkStudents(ctx, c.Students); err != nil {
        return models.Course{}, err
    }
    if c.IconURL == "" {
        c.IconURL = existing.IconURL
    }
    c.CreatedAt = existing.CreatedAt
    if err := s.courses.Update(ctx, &c); err != nil {
        return models.Course{}, wrapRepo(err, "course", "updating course")
    }
    if err := s.courses.ReplaceStudents(ctx, c.ID, c.Students); err != nil {
        return models.Course{}, wrapRepo(err, "course", "saving membership")
    }
    return s.Get(ctx, c.ID)
}

// Delete removes the course and cascades to membership and attendance rows.
func (s *CourseService) Delete(ctx context.Context, id uint) error {
    if _, err := s.courses.Get(ctx, id); err != nil {
        return wrapRepo(err, "course", "loading course")
    }
    defer s.cache.Delete(ctx, summaryCacheKey)
    return wrapRepo(s.courses.Delete(ctx, id), "course", "deleting course")
}

// Subjects returns the distinct subject names, sorted.
func (s *CourseService) Subjects(ctx context.Context) ([]string, error) {
    subjects, err := s.courses.ListSubjects(ctx)
    return subjects, wrapRepo(err, "courses", "listing subjects")
}
