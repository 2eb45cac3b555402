// Package usecase はarticlesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"blog_backend/internal/feature/articles/domain"
	"blog_backend/internal/feature/articles/domain/entity"
)

// ArticleRepository は記事エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ArticleRepository interface {
	// Create は新しい記事をストレージに永続化します。
	Create(ctx context.Context, article *entity.Article) error

	// FindAll は全記事をコメント付きで取得します。
	FindAll(ctx context.Context) ([]entity.Article, error)

	// FindByID は指定されたIDの記事をコメント付きで取得します。
	// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Article, error)

	// FindByTitle は指定されたタイトルに一致する記事を取得します。
	// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
	FindByTitle(ctx context.Context, title string) (*entity.Article, error)

	// Update は既存記事のフィールドを上書きします。
	Update(ctx context.Context, article *entity.Article) error

	// Delete は指定されたIDの記事を物理削除します。
	// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// articleUsecase は記事管理のビジネスロジックを実装します。
type articleUsecase struct {
	articles ArticleRepository
}

// NewArticleUsecase はarticleUsecaseの新しいインスタンスを生成します。
func NewArticleUsecase(articles ArticleRepository) *articleUsecase {
	return &articleUsecase{articles: articles}
}

// Create は新しい記事を作成します。
// 同じタイトルの記事が既に存在する場合、domain.ErrArticleExistsを返します。
// サムネイル未指定時はプレースホルダー文字列が設定されます。
func (u *articleUsecase) Create(ctx context.Context, title, body, thumbnail string) (*entity.Article, error) {
	if _, err := u.articles.FindByTitle(ctx, title); err == nil {
		return nil, domain.ErrArticleExists
	} else if !errors.Is(err, domain.ErrArticleNotFound) {
		return nil, err
	}

	if thumbnail == "" {
		thumbnail = entity.DefaultThumbnail
	}
	article := &entity.Article{Title: title, Body: body, Thumbnail: thumbnail}
	if err := u.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// List は全記事をコメント付きで返します。
func (u *articleUsecase) List(ctx context.Context) ([]entity.Article, error) {
	return u.articles.FindAll(ctx)
}

// Get は指定されたIDの記事をコメント付きで返します。
func (u *articleUsecase) Get(ctx context.Context, id uint) (*entity.Article, error) {
	return u.articles.FindByID(ctx, id)
}

// Update は既存記事のタイトルと本文を上書きします。
// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
func (u *articleUsecase) Update(ctx context.Context, id uint, title, body string) (*entity.Article, error) {
	article, err := u.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = title
	article.Body = body
	if err := u.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete は指定されたIDの記事を削除します。
func (u *articleUsecase) Delete(ctx context.Context, id uint) error {
	return u.articles.Delete(ctx, id)
}
