// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/auth/registerエンドポイントのリクエストボディを表します。
// Ginのbindingタグで入力チェック（必須・メール形式）を行います。
type RegisterReq struct {
	Names    string `json:"names" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserReq は/auth/edit/:idエンドポイントのリクエストボディを表します。
// 3フィールドすべてが必須です。
type UpdateUserReq struct {
	Names    string `json:"names" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
