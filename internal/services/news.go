package services

import (
    "context"
    "strings"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

// NewsPost is a bulletin item with its author resolved to a display name.
type NewsPost struct {
    ID        uint   `json:"id"`
    Title     string `json:"title"`
    Content   string `json:"content"`
    AuthorID  uint   `json:"authorId"`
    Author    string `json:"author"`
    CreatedAt string `json:"date"`
}

type NewsService struct {
    news  repository.News
    users repository.Users
}

func NewNewsService(news repository.News, users repository.Users) *NewsService {
    return &NewsService{news: news, users: users}
}

func (s *NewsService) resolve(ctx context.Context, item models.NewsItem) NewsPost {
    author := "Unknown"
    if u, err := s.users.GetByID(ctx, item.AuthorID); err == nil {
        author = u.Name
    }
    return NewsPost{
        ID:        item.ID,
        Title:     item.Title,
        Content:   item.Content,
        AuthorID:  item.AuthorID,
        Author:    author,
        CreatedAt: item.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
    }
}

func (s *NewsService) List(ctx context.Context) ([]NewsPost, error) {
    items, err := s.news.List(ctx)
    if err != nil {
        return nil, wrapRepo(err, "news", "listing news")
    }
    posts := make([]NewsPost, 0, len(items))
    for _, item := range items {
        posts = append(posts, s.resolve(ctx, item))
    }
    return posts, nil
}

func (s *NewsService) validate(ctx context.Context, title, content string, authorID uint) error {
    if strings.TrimSpace(title) == "" {
        return ValidationError{Field: "title", Message: "is required"}
    }
    if strings.TrimSpace(content) == "" {
        return ValidationError{Field: "content", Message: "is required"}
    }
    if _, err := s.users.GetByID(ctx, authorID); err != nil {
        return wrapRepo(err, "author", "loading author")
    }
    return nil
}

func (s *NewsService) Create(ctx context.Context, title, content string, authorID uint) (NewsPost, error) {
    if err := s.validate(ctx, title, content, authorID); err != nil {
        return NewsPost{}, err
    }
    item := models.NewsItem{Title: title, Content: content, AuthorID: authorID}
    if err := s.news.Create(ctx, &item); err != nil {
        return NewsPost{}, wrapRepo(err, "news item", "creating news")
    }
    return s.resolve(ctx, item), nil
}

// Update overwrites title, content and author in place; no history is kept.
func (s *NewsService) Update(ctx context.Context, id uint, title, content string, authorID uint) (NewsPost, error) {
    item, err := s.news.Get(ctx, id)
    if err != nil {
        return NewsPost{}, wrapRepo(err, "news item", "loading news")
    }
    if err := s.validate(ctx, title, content, authorID); err != nil {
        return NewsPost{}, err
    }
    item.Title = title
    item.Content = content
    item.AuthorID = authorID
    if err := s.news.Update(ctx, &item); err != nil {
        return NewsPost{}, wrapRepo(err, "news item", "updating news")
    }
    return s.resolve(ctx, item), nil
}

func (s *NewsService) Delete(ctx context.Context, id uint) error {
    if _, err := s.news.Get(ctx, id); err != nil {
        return wrapRepo(err, "news item", "loading news")
    }
    return wrapRepo(s.news.Delete(ctx, id), "news item", "deleting news")
}
