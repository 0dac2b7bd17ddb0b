package services

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/preceptoria/backend/internal/models"
)

func TestNewsCreateResolvesAuthor(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    author := env.createUser(t, "Laura Vega", "20111222", models.RolePreceptor)

    post, err := env.newsSvc.Create(ctx, "Exam week", "Finals start Monday.", author.ID)
    require.NoError(t, err)
    assert.Equal(t, "Laura Vega", post.Author)
    assert.Equal(t, author.ID, post.AuthorID)
}

func TestNewsCreateUnknownAuthor(t *testing.T) {
    env := newTestEnv(t)
    _, err := env.newsSvc.Create(context.Background(), "Title", "Body", 99)
    var notFound NotFoundError
    assert.ErrorAs(t, err, &notFound)
}

func TestNewsUpdateOverwritesInPlace(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    author := env.createUser(t, "Laura Vega", "20111222", models.RolePreceptor)

    post, err := env.newsSvc.Create(ctx, "Old title", "Old body", author.ID)
    require.NoError(t, err)

    updated, err := env.newsSvc.Update(ctx, post.ID, "New title", "New body", author.ID)
    require.NoError(t, err)
    assert.Equal(t, post.ID, updated.ID)
    assert.Equal(t, "New title", updated.Title)

    posts, err := env.newsSvc.List(ctx)
    require.NoError(t, err)
    require.Len(t, posts, 1)
    assert.Equal(t, "New body", posts[0].Content)
}

func TestNewsListNewestFirst(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    author := env.createUser(t, "Laura Vega", "20111222", models.RolePreceptor)

    first, err := env.newsSvc.Create(ctx, "First", "a", author.ID)
    require.NoError(t, err)
    second, err := env.newsSvc.Create(ctx, "Second", "b", author.ID)
    require.NoError(t, err)

    posts, err := env.newsSvc.List(ctx)
    require.NoError(t, err)
    require.Len(t, posts, 2)
    assert.Equal(t, second.ID, posts[0].ID)
    assert.Equal(t, first.ID, posts[1].ID)
}

func TestNewsDelete(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    author := env.createUser(t, "Laura Vega", "20111222", models.RolePreceptor)

    post, err := env.newsSvc.Create(ctx, "Gone", "soon", author.ID)
    require.NoError(t, err)
    require.NoError(t, env.newsSvc.Delete(ctx, post.ID))

    err = env.newsSvc.Delete(ctx, post.ID)
    var notFound NotFoundError
    assert.ErrorAs(t, err, &notFound)
}
