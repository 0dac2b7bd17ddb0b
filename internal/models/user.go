package models

import (
    "time"
)

const (
    RoleAdmin     = "Admin"
    RolePreceptor = "Preceptor"
    RoleStudent   = "Student"
)

var allowedRoles = map[string]struct{}{
    RoleAdmin:     {},
    RolePreceptor: {},
    RoleStudent:   {},
}

func IsValidRole(role string) bool {
    _, ok := allowedRoles[role]
    return ok
}

type User struct {
    ID        uint    `gorm:"primaryKey" json:"id"`
    Name      string  `gorm:"not null" json:"name"`
    Document  string  `gorm:"uniqueIndex;not null" json:"document"`
    Role      string  `gorm:"not null" json:"role"`
    // CourseGroup is the student's course-group label (e.g. "3A"), empty for staff.
    CourseGroup string  `gorm:"column:course" json:"course,omitempty"`
    AvatarURL   *string `gorm:"column:avatar_url" json:"avatarUrl,omitempty"`
    CreatedAt   time.Time `json:"createdAt"`
    UpdatedAt   time.Time `json:"updatedAt"`
}

// IsStaff reports whether the user can take attendance and review certificates.
func (u User) IsStaff() bool {
    return u.Role == RoleAdmin || u.Role == RolePreceptor
}
