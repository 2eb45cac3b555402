// Package usecase はmessagesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"blog_backend/internal/feature/messages/domain"
	"blog_backend/internal/feature/messages/domain/entity"
)

// MessageRepository は問い合わせメッセージの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type MessageRepository interface {
	// Create は新しいメッセージをストレージに永続化します。
	Create(ctx context.Context, message *entity.Message) error

	// FindAll は全メッセージを取得します。
	FindAll(ctx context.Context) ([]entity.Message, error)

	// FindByID は指定されたIDのメッセージを取得します。
	// メッセージが存在しない場合、domain.ErrMessageNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Message, error)

	// FindByText は同一本文のメッセージを検索します。
	// 該当がない場合、domain.ErrMessageNotFoundを返します。
	FindByText(ctx context.Context, text string) (*entity.Message, error)

	// UpdateStatus は指定されたIDのメッセージのステータスを更新します。
	UpdateStatus(ctx context.Context, id uint, status string) error

	// Delete は指定されたIDのメッセージを物理削除します。
	Delete(ctx context.Context, id uint) error
}

// messageUsecase は問い合わせメッセージのビジネスロジックを実装します。
type messageUsecase struct {
	messages MessageRepository
}

// NewMessageUsecase はmessageUsecaseの新しいインスタンスを生成します。
func NewMessageUsecase(messages MessageRepository) *messageUsecase {
	return &messageUsecase{messages: messages}
}

// Create は新しい問い合わせメッセージをステータス"Pending"で作成します。
// 同一本文のメッセージが既に存在する場合、domain.ErrDuplicateMessageを返します。
func (u *messageUsecase) Create(ctx context.Context, names, email, text string) (*entity.Message, error) {
	if _, err := u.messages.FindByText(ctx, text); err == nil {
		return nil, domain.ErrDuplicateMessage
	} else if !errors.Is(err, domain.ErrMessageNotFound) {
		return nil, err
	}

	message := &entity.Message{
		Names:  names,
		Email:  email,
		Body:   text,
		Status: entity.StatusPending,
	}
	if err := u.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// List は全メッセージを返します。
func (u *messageUsecase) List(ctx context.Context) ([]entity.Message, error) {
	return u.messages.FindAll(ctx)
}

// Get は指定されたIDのメッセージを返します。
func (u *messageUsecase) Get(ctx context.Context, id uint) (*entity.Message, error) {
	return u.messages.FindByID(ctx, id)
}

// UpdateStatus はメッセージのステータスを任意の文字列へ更新します。
// 対象が存在しない場合はdomain.ErrMessageNotFoundを返し、更新は行いません。
func (u *messageUsecase) UpdateStatus(ctx context.Context, id uint, status string) error {
	if _, err := u.messages.FindByID(ctx, id); err != nil {
		return err
	}
	return u.messages.UpdateStatus(ctx, id, status)
}

// Delete は指定されたIDのメッセージを削除します。
// 対象が存在しない場合はdomain.ErrMessageNotFoundを返し、削除は行いません。
func (u *messageUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.messages.FindByID(ctx, id); err != nil {
		return err
	}
	return u.messages.Delete(ctx, id)
}
