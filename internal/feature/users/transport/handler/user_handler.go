// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/users/domain"
	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/feature/users/transport/http/dto"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Register は指定された名前・メールアドレス・パスワードで新規ユーザーを登録します。
	Register(ctx context.Context, names, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// Update は既存ユーザーの全フィールドを上書きします。
	Update(ctx context.Context, id uint, names, email, password string) (*entity.User, error)
	// List は登録されている全ユーザーを返します。
	List(ctx context.Context) ([]entity.User, error)
	// Get は指定されたIDのユーザーを返します。
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Delete は指定されたIDのユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は400を返却
// - 成功時は201とパスワードハッシュを除いたユーザーを返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	user, err := h.users.Register(c.Request.Context(), req.Names, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			slog.Warn("register rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "Email already taken"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserEnvelope{
		Status:  http.StatusCreated,
		Success: true,
		Message: "User created Successfully",
		User:    user,
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー未登録時は404を返却
// - パスワード不一致時は400を返却
// - 成功時はJWTトークン付きで200を返却
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "You're missing email or password"})
		return
	}
	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "User not found"})
		case errors.Is(err, domain.ErrWrongPassword):
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "Wrong password"})
		default:
			h.renderError(c, err)
		}
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenEnvelope{
		Status:  http.StatusOK,
		Success: true,
		Message: "Logged in successfully",
		Token:   token,
	})
}

// Update はユーザー情報更新APIエンドポイントを処理します。
// 3フィールドすべてが必須で、パスワードは常に再ハッシュ化されます。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, req.Names, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "User not found"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("user updated", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.UserEnvelope{
		Status:  http.StatusOK,
		Success: true,
		Message: "User information updated Successfully",
		User:    user,
	})
}

// List は全ユーザー取得APIエンドポイントを処理します。
func (h *UserHandler) List(c *gin.Context) {
	userInfo, err := h.users.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UsersEnvelope{Success: true, UserInfo: userInfo})
}

// Get は単一ユーザー取得APIエンドポイントを処理します。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "User not found"})
			return
		}
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{Status: http.StatusOK, Message: "User found successfully", User: user})
}

// Delete はユーザー削除APIエンドポイントを処理します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "User not found"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("user deleted", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Status: http.StatusOK, Message: "User deleted successfully"})
}

// parseID は:idパスパラメータをuintとして解釈します。不正な場合は400を返します。
func (h *UserHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// renderError はドメインエラー以外の失敗を400で返却します。
// エラーをログに残した上で必ずレスポンスを書き込みます。
func (h *UserHandler) renderError(c *gin.Context, err error) {
	slog.Error("user request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
}
