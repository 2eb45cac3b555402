package dto

import "blog_backend/internal/feature/messages/domain/entity"

// MessageEnvelope は単一メッセージを含む成功レスポンスを表します。
type MessageEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    *entity.Message `json:"data"`
}

// MessagesEnvelope は全メッセージ一覧のレスポンスを表します。
type MessagesEnvelope struct {
	Success  bool             `json:"success"`
	Messages []entity.Message `json:"messages"`
}

// MessageResultEnvelope は削除・更新成功時のレスポンスを表します。
// 結果キーが"messages"なのは既存フロントエンドとの互換のためです。
type MessageResultEnvelope struct {
	Success bool   `json:"success"`
	Result  string `json:"messages"`
}
