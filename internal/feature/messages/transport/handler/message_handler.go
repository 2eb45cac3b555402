// Package handler はmessagesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/messages/domain"
	"blog_backend/internal/feature/messages/domain/entity"
	"blog_backend/internal/feature/messages/transport/http/dto"
)

// MessageUsecase は問い合わせメッセージ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type MessageUsecase interface {
	// Create は新しい問い合わせメッセージをステータス"Pending"で作成します。
	Create(ctx context.Context, names, email, text string) (*entity.Message, error)
	// List は全メッセージを返します。
	List(ctx context.Context) ([]entity.Message, error)
	// Get は指定されたIDのメッセージを返します。
	Get(ctx context.Context, id uint) (*entity.Message, error)
	// UpdateStatus はメッセージのステータスを任意の文字列へ更新します。
	UpdateStatus(ctx context.Context, id uint, status string) error
	// Delete は指定されたIDのメッセージを削除します。
	Delete(ctx context.Context, id uint) error
}

// MessageHandler は問い合わせメッセージ操作のHTTPリクエストを処理します。
type MessageHandler struct {
	messages MessageUsecase
}

// NewMessageHandler はMessageHandlerの新しいインスタンスを生成します。
func NewMessageHandler(messages MessageUsecase) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Create は問い合わせメッセージ送信APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 同一本文のメッセージが既にある場合は400を返却
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.CreateMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create message validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	if _, err := h.messages.Create(c.Request.Context(), req.Names, req.Email, req.Message); err != nil {
		if errors.Is(err, domain.ErrDuplicateMessage) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "You already sent this message !"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("contact message received", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Status: http.StatusOK, Message: "Thanks for contacting us !"})
}

// List は全メッセージ取得APIエンドポイントを処理します。
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessagesEnvelope{Success: true, Messages: messages})
}

// Get は単一メッセージ取得APIエンドポイントを処理します。
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	message, err := h.messages.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Message not found!"})
			return
		}
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageEnvelope{Status: http.StatusOK, Message: "Message found", Data: message})
}

// UpdateStatus はメッセージステータス更新APIエンドポイントを処理します。
// 対象が存在しない場合は404を返却し、更新は行いません。
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update message validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	if err := h.messages.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Message not found!"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("message status updated", "id", id, "status", req.Status)
	c.JSON(http.StatusOK, dto.MessageResultEnvelope{Success: true, Result: "Message status updated successfully"})
}

// Delete はメッセージ削除APIエンドポイントを処理します。
// 対象が存在しない場合は404を返却し、削除は行いません。
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.messages.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Message not found!"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("message deleted", "id", id)
	c.JSON(http.StatusOK, dto.MessageResultEnvelope{Success: true, Result: "Message deleted successfully"})
}

// parseID は:idパスパラメータをuintとして解釈します。不正な場合は400を返します。
func (h *MessageHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// renderError はドメインエラー以外の失敗を400で返却します。
func (h *MessageHandler) renderError(c *gin.Context, err error) {
	slog.Error("message request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
}
