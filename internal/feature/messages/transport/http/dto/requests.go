// Package dto はmessagesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateMessageReq は/contact/sendMessageエンドポイントのリクエストボディを表します。
type CreateMessageReq struct {
	Names   string `json:"names" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// UpdateStatusReq は/contact/updateMessage/:idエンドポイントのリクエストボディを表します。
// ステータスは自由な文字列で、遷移の検証は行いません。
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}
