// Package handler はcommentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/comments/domain"
	"blog_backend/internal/feature/comments/domain/entity"
	"blog_backend/internal/feature/comments/transport/http/dto"
)

// CommentUsecase はコメント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CommentUsecase interface {
	// Create は既存の記事に対して新しいコメントを作成します。
	Create(ctx context.Context, articleID uint, names, email, content string) (*entity.Comment, error)
	// List は全記事のコメントを返します。
	List(ctx context.Context) ([]entity.Comment, error)
	// Delete は指定されたIDのコメントを削除します。
	Delete(ctx context.Context, id uint) error
}

// CommentHandler はコメント操作のHTTPリクエストを処理します。
type CommentHandler struct {
	comments CommentUsecase
}

// NewCommentHandler はCommentHandlerの新しいインスタンスを生成します。
func NewCommentHandler(comments CommentUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create はコメント作成APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 対象記事が存在しない場合は404を返却
// - 同一記事への同一内容コメントは400を返却
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create comment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	comment, err := h.comments.Create(c.Request.Context(), req.ArticleID, req.Names, req.Email, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Article not found !"})
		case errors.Is(err, domain.ErrDuplicateComment):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "Your comment already sent !"})
		default:
			h.renderError(c, err)
		}
		return
	}
	slog.Info("comment created", "id", comment.ID, "article_id", req.ArticleID)
	c.JSON(http.StatusCreated, dto.CreatedCommentEnvelope{
		Status:  http.StatusCreated,
		Success: true,
		Message: "Comment sent Successfully",
		Comment: comment,
	})
}

// List は全コメント取得APIエンドポイントを処理します。
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentsEnvelope{Success: true, Comments: comments})
}

// Delete はコメント削除APIエンドポイントを処理します。
// 削除されたコメントは所属記事のコメント一覧からも消えます。
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid id"})
		return
	}
	if err := h.comments.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Comment not found !"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("comment deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Status: http.StatusOK, Message: "Comment removed successfully"})
}

// renderError はドメインエラー以外の失敗を400で返却します。
func (h *CommentHandler) renderError(c *gin.Context, err error) {
	slog.Error("comment request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
}
