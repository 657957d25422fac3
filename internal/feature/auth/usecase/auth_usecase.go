// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"mf_backend/internal/feature/auth/domain/entity"
	"mf_backend/internal/shared/apperr"
)

const (
	// DefaultHashCost はパスワードハッシュのbcryptコストです。
	DefaultHashCost = 12

	// maxPasswordBytes はbcryptが扱えるパスワードの最大バイト数です。
	maxPasswordBytes = 72

	// MaxNameLen と MaxEmailLen は users テーブルのカラム長です。
	MaxNameLen  = 255
	MaxEmailLen = 255
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// メールアドレスの一意制約に違反した場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// JWTVerifier はJWTトークン検証のインターフェースを定義します。
// 検証は署名と有効期限のみで行い、ストレージにはアクセスしません。
type JWTVerifier interface {
	Verify(token string) (uint, string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	jwtVerifier  JWTVerifier
	hashCost     int
	// dummyHash はユーザーが存在しない場合の比較に使用します。
	dummyHash []byte
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// hashCostが範囲外の場合はDefaultHashCostを使用します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, jwtVerifier JWTVerifier, hashCost int) *authUsecase {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = DefaultHashCost
	}
	// コストが範囲内なので失敗しない
	dummy, _ := bcrypt.GenerateFromPassword([]byte("timing-equalizer"), hashCost)
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		jwtVerifier:  jwtVerifier,
		hashCost:     hashCost,
		dummyHash:    dummy,
	}
}

// normalizeEmail はメールアドレスを比較用に正規化します（前後の空白除去・小文字化）。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、トークンを発行します。
// メールアドレスの重複はDBの一意制約で判定するため、事前の存在確認は行いません。
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, *entity.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return "", nil, apperr.Validation("all fields are required")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return "", nil, apperr.Validation(fmt.Sprintf("name must be at most %d characters", MaxNameLen))
	}
	if utf8.RuneCountInString(email) > MaxEmailLen {
		return "", nil, apperr.Validation(fmt.Sprintf("email must be at most %d characters", MaxEmailLen))
	}
	if len(password) > maxPasswordBytes {
		return "", nil, apperr.Validation(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return "", nil, apperr.Conflict("user already exists", err)
		}
		return "", nil, apperr.Internal(fmt.Errorf("failed to create user: %w", err))
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("failed to generate token: %w", err))
	}
	return token, user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, apperr.Validation("email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", nil, apperr.Internal(fmt.Errorf("failed to find user: %w", err))
	}

	passwordHash := u.dummyHash
	if user != nil {
		passwordHash = []byte(user.Password)
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword(passwordHash, []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if user == nil || compareErr != nil {
		return "", nil, apperr.Auth("invalid email or password", compareErr)
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("failed to generate token: %w", err))
	}
	return token, user, nil
}

// VerifyToken はトークンの署名と有効期限を検証し、埋め込まれたユーザーIDとメールアドレスを返します。
// 失敗理由（欠落・不正形式・期限切れ・署名不一致）はすべてAuthエラーとして返します。
func (u *authUsecase) VerifyToken(_ context.Context, token string) (uint, string, error) {
	userID, email, err := u.jwtVerifier.Verify(token)
	if err != nil {
		return 0, "", apperr.Auth("invalid token", err)
	}
	return userID, email, nil
}
