// Package memory implements the repository interfaces over in-process maps.
// It backs the service and handler tests; production uses gormrepo.
package memory

import (
    "sync"

    "github.com/preceptoria/backend/internal/models"
)

type DB struct {
    mu sync.RWMutex

    users       map[uint]models.User
    courses     map[uint]models.Course
    memberships []models.CourseStudent
    attendance  map[uint]models.Attendance
    news        map[uint]models.NewsItem
    settings    map[string]models.Setting

    nextUserID       uint
    nextCourseID     uint
    nextAttendanceID uint
    nextNewsID       uint
    nextSettingID    uint
}

func Open() *DB {
    return &DB{
        users:      make(map[uint]models.User),
        courses:    make(map[uint]models.Course),
        attendance: make(map[uint]models.Attendance),
        news:       make(map[uint]models.NewsItem),
        settings:   make(map[string]models.Setting),
    }
}

func (db *DB) nextUser() uint       { db.nextUserID++; return db.nextUserID }
func (db *DB) nextCourse() uint     { db.nextCourseID++; return db.nextCourseID }
func (db *DB) nextAttendance() uint { db.nextAttendanceID++; return db.nextAttendanceID }
func (db *DB) nextNews() uint       { db.nextNewsID++; return db.nextNewsID }
func (db *DB) nextSetting() uint    { db.nextSettingID++; return db.nextSettingID }
