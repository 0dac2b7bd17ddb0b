package services

import (
    "context"
    "strings"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type UserService struct {
    users repository.Users
}

func NewUserService(users repository.Users) *UserService {
    return &UserService{users: users}
}

// GetByDocument resolves the login key. Unknown documents surface as
// NotFoundError ("user not found").
func (s *UserService) GetByDocument(ctx context.Context, document string) (models.User, error) {
    document = strings.TrimSpace(document)
    if document == "" {
        return models.User{}, ValidationError{Field: "document", Message: "is required"}
    }
    u, err := s.users.GetByDocument(ctx, document)
    return u, wrapRepo(err, "user", "loading user")
}

func (s *UserService) Get(ctx context.Context, id uint) (models.User, error) {
    u, err := s.users.GetByID(ctx, id)
    return u, wrapRepo(err, "user", "loading user")
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
    users, err := s.users.List(ctx)
    return users, wrapRepo(err, "users", "listing users")
}

func (s *UserService) Students(ctx context.Context) ([]models.User, error) {
    users, err := s.users.ListByRole(ctx, models.RoleStudent)
    return users, wrapRepo(err, "users", "listing students")
}

func (s *UserService) validate(u models.User) error {
    if strings.TrimSpace(u.Name) == "" {
        return ValidationError{Field: "name", Message: "is required"}
    }
    if strings.TrimSpace(u.Document) == "" {
        return ValidationError{Field: "document", Message: "is required"}
    }
    if !models.IsValidRole(u.Role) {
        return ValidationError{Field: "role", Message: "must be Admin, Preceptor or Student"}
    }
    return nil
}

func (s *UserService) Create(ctx context.Context, u models.User) (models.User, error) {
    if err := s.validate(u); err != nil {
        return models.User{}, err
    }
    if err := s.users.Create(ctx, &u); err != nil {
        return models.User{}, wrapRepo(err, "user", "creating user")
    }
    return u, nil
}

func (s *UserService) Update(ctx context.Context, u models.User) (models.User, error) {
    if err := s.validate(u); err != nil {
        return models.User{}, err
    }
    existing, err := s.users.GetByID(ctx, u.ID)
    if err != nil {
        return models.User{}, wrapRepo(err, "user", "loading user")
    }
    u.CreatedAt = existing.CreatedAt
    if err := s.users.Update(ctx, &u); err != nil {
        return models.User{}, wrapRepo(err, "user", "updating user")
    }
    return u, nil
}

// Delete removes the user. Attendance and membership rows are left in place
// on purpose; callers accept orphaned references.
func (s *UserService) Delete(ctx context.Context, id uint) error {
    if _, err := s.users.GetByID(ctx, id); err != nil {
        return wrapRepo(err, "user", "loading user")
    }
    return wrapRepo(s.users.Delete(ctx, id), "user", "deleting user")
}

// CourseGroups returns the distinct student course-group labels, sorted.
func (s *UserService) CourseGroups(ctx context.Context) ([]string, error) {
    groups, err := s.users.ListCourseGroups(ctx)
    return groups, wrapRepo(err, "users", "listing course groups")
}
