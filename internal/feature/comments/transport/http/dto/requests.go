// Package dto はcommentsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateCommentReq は/comments/createCommentsエンドポイントのリクエストボディを表します。
// 対象記事のIDはボディで受け取ります。
type CreateCommentReq struct {
	ArticleID uint   `json:"articleId" binding:"required"`
	Names     string `json:"names" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Content   string `json:"content" binding:"required"`
}
