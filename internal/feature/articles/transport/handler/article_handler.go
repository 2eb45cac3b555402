// Package handler はarticlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/articles/domain"
	"blog_backend/internal/feature/articles/domain/entity"
	"blog_backend/internal/feature/articles/transport/http/dto"
)

// ArticleUsecase は記事操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ArticleUsecase interface {
	// Create は新しい記事を作成します。サムネイル未指定時はプレースホルダーが設定されます。
	Create(ctx context.Context, title, body, thumbnail string) (*entity.Article, error)
	// List は全記事をコメント付きで返します。
	List(ctx context.Context) ([]entity.Article, error)
	// Get は指定されたIDの記事をコメント付きで返します。
	Get(ctx context.Context, id uint) (*entity.Article, error)
	// Update は既存記事のタイトルと本文を上書きします。
	Update(ctx context.Context, id uint, title, body string) (*entity.Article, error)
	// Delete は指定されたIDの記事を削除します。
	Delete(ctx context.Context, id uint) error
}

// ArticleHandler は記事操作のHTTPリクエストを処理します。
type ArticleHandler struct {
	articles ArticleUsecase
}

// NewArticleHandler はArticleHandlerの新しいインスタンスを生成します。
func NewArticleHandler(articles ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// Create は記事作成APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - タイトル重複時は400を返却
// - 成功時は201を返却
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create article validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	article, err := h.articles.Create(c.Request.Context(), req.Title, req.Body, req.Thumbnail)
	if err != nil {
		if errors.Is(err, domain.ErrArticleExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "Article already there !"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("article created", "id", article.ID, "title", article.Title)
	c.JSON(http.StatusCreated, dto.CreatedArticleEnvelope{
		Status:  http.StatusCreated,
		Success: true,
		Message: "Article created Successfully",
		Article: article,
	})
}

// List は全記事取得APIエンドポイントを処理します。
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticlesEnvelope{Success: true, Articles: articles})
}

// Get は単一記事取得APIエンドポイントを処理します。
// 記事が存在しない場合、メッセージ付きの404を返却します。
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Article not found !"})
			return
		}
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticleEnvelope{Status: http.StatusOK, Message: "Article found", Article: article})
}

// Update は記事更新APIエンドポイントを処理します。
// 記事が存在しない場合は404を返却します。
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update article validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}
	article, err := h.articles.Update(c.Request.Context(), id, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Article not found !"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("article updated", "id", id)
	c.JSON(http.StatusOK, dto.UpdatedArticleEnvelope{
		Status:  http.StatusOK,
		Success: true,
		Message: "Article updated Successfully",
		Article: article,
	})
}

// Delete は記事削除APIエンドポイントを処理します。
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Status: http.StatusNotFound, Message: "Article not found !"})
			return
		}
		h.renderError(c, err)
		return
	}
	slog.Info("article deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Status: http.StatusOK, Message: "Article removed successfully"})
}

// parseID は:idパスパラメータをuintとして解釈します。不正な場合は400を返します。
func (h *ArticleHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// renderError はドメインエラー以外の失敗を400で返却します。
func (h *ArticleHandler) renderError(c *gin.Context, err error) {
	slog.Error("article request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusBadRequest, api.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
}
