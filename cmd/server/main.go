package main

import (
	"log"

	"blog_backend/internal/app/router"
	articleadapters "blog_backend/internal/feature/articles/adapters"
	articlehandler "blog_backend/internal/feature/articles/transport/handler"
	articleusecase "blog_backend/internal/feature/articles/usecase"
	commentadapters "blog_backend/internal/feature/comments/adapters"
	commenthandler "blog_backend/internal/feature/comments/transport/handler"
	commentusecase "blog_backend/internal/feature/comments/usecase"
	messageadapters "blog_backend/internal/feature/messages/adapters"
	messagehandler "blog_backend/internal/feature/messages/transport/handler"
	messageusecase "blog_backend/internal/feature/messages/usecase"
	useradapters "blog_backend/internal/feature/users/adapters"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	userusecase "blog_backend/internal/feature/users/usecase"
	"blog_backend/internal/platform/config"
	"blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
)

func main() {
	cfg := config.Load()

	// db
	conn := db.OpenDB(cfg)

	// Repository
	userRepo := useradapters.NewUserMySQL(conn)
	articleRepo := articleadapters.NewArticleMySQL(conn)
	commentRepo := commentadapters.NewCommentMySQL(conn)
	messageRepo := messageadapters.NewMessageMySQL(conn)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, jwtmw.NewGenerator(cfg.JWTSecret, jwtmw.TokenTTL))
	articleUC := articleusecase.NewArticleUsecase(articleRepo)
	// コメントは記事の存在チェックに記事リポジトリを使う
	commentUC := commentusecase.NewCommentUsecase(commentRepo, articleRepo)
	messageUC := messageusecase.NewMessageUsecase(messageRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	articleH := articlehandler.NewArticleHandler(articleUC)
	commentH := commenthandler.NewCommentHandler(commentUC)
	messageH := messagehandler.NewMessageHandler(messageUC)

	// ルータ生成
	router := router.NewRouter(cfg.JWTSecret, userH, articleH, commentH, messageH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
