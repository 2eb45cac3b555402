// Package dto はarticlesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateArticleReq は/my-brand/blog/createエンドポイントのリクエストボディを表します。
// サムネイルは省略可能です。
type CreateArticleReq struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Thumbnail string `json:"thumbnail"`
}

// UpdateArticleReq は/articles/editBlogArticle/:idエンドポイントのリクエストボディを表します。
type UpdateArticleReq struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}
