// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/users/domain"
	"blog_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailTakenを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll は登録されている全ユーザーを取得します。
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update は既存ユーザーのフィールドを上書きします。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを物理削除します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// userUsecase はユーザー管理と認証のビジネスロジックを実装します。
type userUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, jwtGenerator JWTGenerator) *userUsecase {
	return &userUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスが既に使用されている場合、domain.ErrEmailTakenを返します。
func (u *userUsecase) Register(ctx context.Context, names, email, password string) (*entity.User, error) {
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Names: names, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// ユーザーが存在しない場合はdomain.ErrUserNotFound、
// パスワード不一致の場合はdomain.ErrWrongPasswordを返します。
func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrWrongPassword
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Update は既存ユーザーの全フィールドを上書きします。
// パスワードは変更の有無にかかわらず再ハッシュ化されます。
func (u *userUsecase) Update(ctx context.Context, id uint, names, email, password string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Names = names
	user.Email = email
	user.Password = string(hashed)
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List は登録されている全ユーザーを返します。
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get は指定されたIDのユーザーを返します。
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Delete は指定されたIDのユーザーを削除します。
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
