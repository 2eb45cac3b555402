// Package api は全エンドポイント共通のレスポンスエンベロープ型を定義します。
package api

// ErrorResponse は失敗時のレスポンスボディを表します。
// ボディ内のstatusはHTTPステータスコードと一致します。
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// MessageResponse はエンティティを含まない成功レスポンスのボディを表します。
type MessageResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}
