package dto

import "blog_backend/internal/feature/comments/domain/entity"

// CreatedCommentEnvelope はコメント作成成功時のレスポンスを表します。
// エンティティキーが"user"なのは既存フロントエンドとの互換のためです。
type CreatedCommentEnvelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Comment *entity.Comment `json:"user"`
}

// CommentsEnvelope は全コメント一覧のレスポンスを表します。
type CommentsEnvelope struct {
	Success  bool             `json:"success"`
	Comments []entity.Comment `json:"comments"`
}
