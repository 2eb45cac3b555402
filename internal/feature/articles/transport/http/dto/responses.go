package dto

import "blog_backend/internal/feature/articles/domain/entity"

// ArticleEnvelope は単一記事を含む成功レスポンスを表します。
type ArticleEnvelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success,omitempty"`
	Message string          `json:"message"`
	Article *entity.Article `json:"article"`
}

// CreatedArticleEnvelope は記事作成成功時のレスポンスを表します。
// エンティティキーが"articles"なのは既存フロントエンドとの互換のためです。
type CreatedArticleEnvelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Article *entity.Article `json:"articles"`
}

// UpdatedArticleEnvelope は記事更新成功時のレスポンスを表します。
// エンティティキーが"user"なのは既存フロントエンドとの互換のためです。
type UpdatedArticleEnvelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Article *entity.Article `json:"user"`
}

// ArticlesEnvelope は全記事一覧のレスポンスを表します。
type ArticlesEnvelope struct {
	Success  bool             `json:"success"`
	Articles []entity.Article `json:"articles"`
}
