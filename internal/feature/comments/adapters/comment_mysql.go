// Package adapters はcommentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/comments/domain"
	"blog_backend/internal/feature/comments/domain/entity"
	"blog_backend/internal/feature/comments/usecase"
)

// commentMySQL はCommentRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type commentMySQL struct {
	db *gorm.DB
}

// commentMySQLがCommentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentMySQL は指定されたgorm.DB接続でcommentMySQLの新しいインスタンスを生成します。
func NewCommentMySQL(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// Create はコメントを記事への逆参照付きでデータベースに追加します。
func (r *commentMySQL) Create(ctx context.Context, c *entity.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// FindAll は全コメントをID昇順で取得します。
func (r *commentMySQL) FindAll(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID はIDでコメントを取得します。
// コメントが存在しない場合、domain.ErrCommentNotFoundを返します。
func (r *commentMySQL) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByContent は指定された記事内で同一内容のコメントを検索します。
// 該当がない場合、domain.ErrCommentNotFoundを返します。
func (r *commentMySQL) FindByContent(ctx context.Context, articleID uint, content string) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).
		Where("article_id = ? AND content = ?", articleID, content).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete はIDでコメントを物理削除します。
// 対象が存在しない場合、domain.ErrCommentNotFoundを返します。
func (r *commentMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
