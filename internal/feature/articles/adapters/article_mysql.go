// Package adapters はarticlesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/articles/domain"
	"blog_backend/internal/feature/articles/domain/entity"
	"blog_backend/internal/feature/articles/usecase"
)

// articleMySQL はArticleRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type articleMySQL struct {
	db *gorm.DB
}

// articleMySQLがArticleRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ArticleRepository = (*articleMySQL)(nil)

// NewArticleMySQL は指定されたgorm.DB接続でarticleMySQLの新しいインスタンスを生成します。
func NewArticleMySQL(db *gorm.DB) *articleMySQL {
	return &articleMySQL{db: db}
}

// Create は記事をデータベースに追加します。
func (r *articleMySQL) Create(ctx context.Context, a *entity.Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindAll は全記事をコメント付きでID昇順に取得します。
func (r *articleMySQL) FindAll(ctx context.Context) ([]entity.Article, error) {
	var articles []entity.Article
	if err := r.db.WithContext(ctx).Preload("Comments").Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByID はIDで記事をコメント付きで取得します。
// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
func (r *articleMySQL) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	var a entity.Article
	if err := r.db.WithContext(ctx).Preload("Comments").Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByTitle はタイトルで記事を取得します。作成時の重複チェックに使用します。
// 記事が存在しない場合、domain.ErrArticleNotFoundを返します。
func (r *articleMySQL) FindByTitle(ctx context.Context, title string) (*entity.Article, error) {
	var a entity.Article
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update は記事のタイトル・本文・サムネイルを保存します。
// Saveでのコメント関連の再書き込みを避けるため、カラムを明示します。
func (r *articleMySQL) Update(ctx context.Context, a *entity.Article) error {
	return r.db.WithContext(ctx).Model(&entity.Article{}).Where("id = ?", a.ID).
		Updates(map[string]any{
			"title":     a.Title,
			"body":      a.Body,
			"thumbnail": a.Thumbnail,
		}).Error
}

// Delete はIDで記事を物理削除します。
// 対象が存在しない場合、domain.ErrArticleNotFoundを返します。
func (r *articleMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// ArticleExists は指定されたIDの記事が存在するかを返します。
// commentsフィーチャーのユースケースから記事存在チェックに使用されます。
func (r *articleMySQL) ArticleExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Article{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
