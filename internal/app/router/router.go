package router

import (
	articlehandler "blog_backend/internal/feature/articles/transport/handler"
	commenthandler "blog_backend/internal/feature/comments/transport/handler"
	messagehandler "blog_backend/internal/feature/messages/transport/handler"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	"blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(jwtSecret string, users *userhandler.UserHandler, articles *articlehandler.ArticleHandler,
	comments *commenthandler.CommentHandler, messages *messagehandler.MessageHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドから叩くためCORSを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/auth/register", users.Register)
	// ログイン（JWT 発行）
	r.POST("/auth/login", users.Login)
	// 記事の公開閲覧
	r.GET("/articles", articles.List)
	r.GET("/articles/getSingleArticle/:id", articles.Get)
	// 訪問者の問い合わせ送信
	r.POST("/contact/sendMessage", messages.Create)
	// 記事コメント（投稿・閲覧は訪問者にも開放）
	r.POST("/comments/createComments", comments.Create)
	r.GET("/comments/retrieveAllComments", comments.List)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		// ユーザー管理
		auth.PUT("/auth/edit/:id", users.Update)
		auth.GET("/users", users.List)
		auth.GET("/users/:id", users.Get)
		auth.DELETE("/removeUser/:id", users.Delete)

		// 記事管理
		auth.POST("/my-brand/blog/create", articles.Create)
		auth.PUT("/articles/editBlogArticle/:id", articles.Update)
		auth.DELETE("/articles/removeSingleArticle/:id", articles.Delete)

		// コメント管理
		auth.DELETE("/comments/removeComment/:id", comments.Delete)

		// 問い合わせ管理
		auth.GET("/contact/getMessages", messages.List)
		auth.GET("/contact/getMessage/:id", messages.Get)
		auth.PUT("/contact/updateMessage/:id", messages.UpdateStatus)
		// 既存クライアント互換のため削除はGETのまま
		auth.GET("/removeContactMessage/:id", messages.Delete)
	}

	return r
}
