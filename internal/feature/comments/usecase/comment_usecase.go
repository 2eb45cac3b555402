// Package usecase はcommentsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"blog_backend/internal/feature/comments/domain"
	"blog_backend/internal/feature/comments/domain/entity"
)

// CommentRepository はコメントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CommentRepository interface {
	// Create は新しいコメントを記事への逆参照付きで永続化します。
	Create(ctx context.Context, comment *entity.Comment) error

	// FindAll は全記事のコメントを取得します。
	FindAll(ctx context.Context) ([]entity.Comment, error)

	// FindByID は指定されたIDのコメントを取得します。
	// コメントが存在しない場合、domain.ErrCommentNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// FindByContent は指定された記事内で同一内容のコメントを検索します。
	// 該当がない場合、domain.ErrCommentNotFoundを返します。
	FindByContent(ctx context.Context, articleID uint, content string) (*entity.Comment, error)

	// Delete は指定されたIDのコメントを物理削除します。
	// コメントが存在しない場合、domain.ErrCommentNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// ArticleChecker はコメント対象の記事の存在チェックを抽象化します。
// 実装はarticlesフィーチャーのアダプターが提供します。
type ArticleChecker interface {
	// ArticleExists は指定されたIDの記事が存在するかを返します。
	ArticleExists(ctx context.Context, id uint) (bool, error)
}

// commentUsecase はコメント管理のビジネスロジックを実装します。
type commentUsecase struct {
	comments CommentRepository
	articles ArticleChecker
}

// NewCommentUsecase はcommentUsecaseの新しいインスタンスを生成します。
func NewCommentUsecase(comments CommentRepository, articles ArticleChecker) *commentUsecase {
	return &commentUsecase{
		comments: comments,
		articles: articles,
	}
}

// Create は既存の記事に対して新しいコメントを作成します。
// 記事が存在しない場合はdomain.ErrArticleNotFound、
// 同じ記事に同一内容のコメントが既にある場合はdomain.ErrDuplicateCommentを返します。
func (u *commentUsecase) Create(ctx context.Context, articleID uint, names, email, content string) (*entity.Comment, error) {
	exists, err := u.articles.ArticleExists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrArticleNotFound
	}

	if _, err := u.comments.FindByContent(ctx, articleID, content); err == nil {
		return nil, domain.ErrDuplicateComment
	} else if !errors.Is(err, domain.ErrCommentNotFound) {
		return nil, err
	}

	comment := &entity.Comment{
		Names:     names,
		Email:     email,
		Content:   content,
		ArticleID: articleID,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List は全記事のコメントを返します。
func (u *commentUsecase) List(ctx context.Context) ([]entity.Comment, error) {
	return u.comments.FindAll(ctx)
}

// Delete は指定されたIDのコメントを削除します。
// 削除されたコメントは所属記事のコメント一覧からも消えます。
func (u *commentUsecase) Delete(ctx context.Context, id uint) error {
	return u.comments.Delete(ctx, id)
}
