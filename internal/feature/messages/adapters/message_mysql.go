// Package adapters はmessagesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/messages/domain"
	"blog_backend/internal/feature/messages/domain/entity"
	"blog_backend/internal/feature/messages/usecase"
)

// messageMySQL はMessageRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type messageMySQL struct {
	db *gorm.DB
}

// messageMySQLがMessageRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MessageRepository = (*messageMySQL)(nil)

// NewMessageMySQL は指定されたgorm.DB接続でmessageMySQLの新しいインスタンスを生成します。
func NewMessageMySQL(db *gorm.DB) *messageMySQL {
	return &messageMySQL{db: db}
}

// Create はメッセージをデータベースに追加します。
func (r *messageMySQL) Create(ctx context.Context, m *entity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindAll は全メッセージをID昇順で取得します。
func (r *messageMySQL) FindAll(ctx context.Context) ([]entity.Message, error) {
	var messages []entity.Message
	if err := r.db.WithContext(ctx).Order("id").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindByID はIDでメッセージを取得します。
// メッセージが存在しない場合、domain.ErrMessageNotFoundを返します。
func (r *messageMySQL) FindByID(ctx context.Context, id uint) (*entity.Message, error) {
	var m entity.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByText は本文でメッセージを検索します。作成時の重複チェックに使用します。
// 該当がない場合、domain.ErrMessageNotFoundを返します。
func (r *messageMySQL) FindByText(ctx context.Context, text string) (*entity.Message, error) {
	var m entity.Message
	if err := r.db.WithContext(ctx).Where("message = ?", text).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateStatus はメッセージのステータスカラムのみを更新します。
func (r *messageMySQL) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&entity.Message{}).Where("id = ?", id).
		Update("status", status).Error
}

// Delete はIDでメッセージを物理削除します。
func (r *messageMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Message{}, id).Error
}
