package dto

import "blog_backend/internal/feature/users/domain/entity"

// UserEnvelope は単一ユーザーを含む成功レスポンスを表します。
// entity.UserのPasswordはjson:"-"のため、レスポンスに含まれません。
type UserEnvelope struct {
	Status  int          `json:"status"`
	Success bool         `json:"success,omitempty"`
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

// UsersEnvelope は全ユーザー一覧のレスポンスを表します。
type UsersEnvelope struct {
	Success  bool          `json:"success"`
	UserInfo []entity.User `json:"userInfo"`
}

// TokenEnvelope はログイン成功時のレスポンスを表します。
type TokenEnvelope struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
