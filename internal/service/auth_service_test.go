// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"go_manabi_quest/internal/config"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	cfg := testConfig()
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiryHours = 24
	return cfg
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()

	req := &model.RegisterRequest{
		Name:     "taro",
		Email:    "taro@example.com",
		Password: "password123",
	}

	t.Run("正常系: 登録成功でパスワードがハッシュ化される", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(2).(*model.User)
				assert.Equal(t, req.Name, user.Name)
				assert.Equal(t, req.Email, user.Email)
				assert.NotEqual(t, uuid.Nil, user.UserID)
				assert.NotEqual(t, req.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			}).Return(nil).Once()

		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, authTestConfig())
		user, err := authService.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, req.Email, user.Email)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: メールアドレスが重複", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)

		existing := &model.User{UserID: uuid.New(), Email: req.Email}
		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(existing, nil).Once()

		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, authTestConfig())
		user, err := authService.Register(ctx, req)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, model.ErrConflict)
		mockUserRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: Create時のユニーク制約違反 (レース) も重複扱い", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(model.ErrConflict).Once()

		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, authTestConfig())
		user, err := authService.Register(ctx, req)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	testUser := &model.User{
		UserID:       uuid.New(),
		Name:         "taro",
		Email:        "taro@example.com",
		PasswordHash: string(hashed),
	}

	t.Run("正常系: ログイン成功でユーザーIDをsubに持つJWTが返る", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)
		cfg := authTestConfig()

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), testUser.Email).
			Return(testUser, nil).Once()

		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, cfg)
		resp, err := authService.Login(ctx, &model.LoginRequest{Email: testUser.Email, Password: password})

		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		require.NotEmpty(t, resp.AccessToken)

		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		subject, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, testUser.UserID.String(), subject)
	})

	t.Run("異常系: パスワード不一致", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), testUser.Email).
			Return(testUser, nil).Once()

		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, authTestConfig())
		resp, err := authService.Login(ctx, &model.LoginRequest{Email: testUser.Email, Password: "wrong-password"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 存在しないメールアドレス", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nobody@example.com").
			Return(nil, model.ErrNotFound).Once()

		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, authTestConfig())
		resp, err := authService.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: password})

		assert.Nil(t, resp)
		// 列挙攻撃を防ぐため、存在しないユーザーもパスワード不一致と同じ扱い
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
