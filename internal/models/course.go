package models

import (
    "time"
)

// Course is the domain aggregate: Students carries the enrolled ids assembled
// from the student_courses join table, it is never persisted as a column.
type Course struct {
    ID        uint   `gorm:"primaryKey" json:"id"`
    Name      string `gorm:"not null" json:"name"`
    Subject   string `gorm:"not null" json:"subject"`
    Classroom string `json:"classroom"`
    // Schedule is the weekly hour load.
    Schedule    int       `json:"schedule"`
    MaxAbsences int       `gorm:"not null" json:"maxAbsences"`
    IconURL     string    `gorm:"column:icon_url" json:"iconUrl"`
    Students    []uint    `gorm:"-" json:"students"`
    CreatedAt   time.Time `json:"createdAt"`
    UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseStudent is one row of the student↔course membership relation.
type CourseStudent struct {
    ID        uint `gorm:"primaryKey"`
    StudentID uint `gorm:"not null;uniqueIndex:idx_student_courses_pair"`
    CourseID  uint `gorm:"not null;uniqueIndex:idx_student_courses_pair"`
    CreatedAt time.Time
}

func (CourseStudent) TableName() string { return "student_courses" }
