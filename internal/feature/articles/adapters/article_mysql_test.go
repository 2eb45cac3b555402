package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog_backend/internal/feature/articles/domain"
	"blog_backend/internal/feature/articles/domain/entity"
	commententity "blog_backend/internal/feature/comments/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Article{}, &commententity.Comment{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestArticleMySQL_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleMySQL(db)
	ctx := context.Background()

	a := &entity.Article{Title: "First Post", Body: "Hello", Thumbnail: entity.DefaultThumbnail}
	require.NoError(t, repo.Create(ctx, a))
	assert.NotZero(t, a.ID)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Post", got.Title)
	assert.Equal(t, "Hello", got.Body)
	assert.Equal(t, entity.DefaultThumbnail, got.Thumbnail)
	assert.Empty(t, got.Comments)

	byTitle, err := repo.FindByTitle(ctx, "First Post")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byTitle.ID)
}

func TestArticleMySQL_FindByID_PreloadsComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleMySQL(db)
	ctx := context.Background()

	a := &entity.Article{Title: "Post", Body: "Body", Thumbnail: "t"}
	require.NoError(t, repo.Create(ctx, a))

	comment := &commententity.Comment{Names: "Jane", Email: "jane@example.com", Content: "Nice!", ArticleID: a.ID}
	require.NoError(t, db.Create(comment).Error)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, comment.ID, got.Comments[0].ID)
	assert.Equal(t, "Nice!", got.Comments[0].Content)
}

func TestArticleMySQL_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleMySQL(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)

	_, err = repo.FindByTitle(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 999), domain.ErrArticleNotFound)
}

func TestArticleMySQL_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleMySQL(db)
	ctx := context.Background()

	a := &entity.Article{Title: "Old", Body: "Old body", Thumbnail: "t"}
	require.NoError(t, repo.Create(ctx, a))

	a.Title = "New"
	a.Body = "New body"
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "New body", got.Body)
}

func TestArticleMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleMySQL(db)
	ctx := context.Background()

	a := &entity.Article{Title: "Temp", Body: "Body", Thumbnail: "t"}
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err := repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleMySQL_ArticleExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleMySQL(db)
	ctx := context.Background()

	a := &entity.Article{Title: "Post", Body: "Body", Thumbnail: "t"}
	require.NoError(t, repo.Create(ctx, a))

	exists, err := repo.ArticleExists(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ArticleExists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
