package models

import (
    "time"
)

type NewsItem struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    Title     string    `gorm:"not null" json:"title"`
    Content   string    `gorm:"not null" json:"content"`
    AuthorID  uint      `gorm:"not null" json:"authorId"`
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`
}

func (NewsItem) TableName() string { return "news" }
