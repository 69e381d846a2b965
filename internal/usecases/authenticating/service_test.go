package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-kpi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-kpi-api/internal/config"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}

	return NewService(userRepo, cfg), userRepo
}

func hashedUser(t *testing.T, password string, active bool) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Ana Souza",
		Email:        "ana@exemplo.com",
		PasswordHash: string(hash),
		Active:       active,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("Login válido emite token aceito pela validação", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(hashedUser(t, "senha123", true), nil)

		token, user, err := service.LoginUser("Ana@Exemplo.com", "senha123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Empty(t, user.PasswordHash)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "ana@exemplo.com", claims.Email)
	})

	t.Run("Senha errada resulta em credenciais inválidas", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(hashedUser(t, "senha123", true), nil)

		token, user, err := service.LoginUser("ana@exemplo.com", "outra-senha")

		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("x@exemplo.com").Return(nil, nil)

		_, _, err := service.LoginUser("x@exemplo.com", "senha123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Usuário desativado não autentica", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(hashedUser(t, "senha123", false), nil)

		_, _, err := service.LoginUser("ana@exemplo.com", "senha123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		service, _ := newTestAuthenticator(t)

		_, _, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Usuário novo é criado com hash e sem expor a senha", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("novo@exemplo.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.NotEqual(t, "senha123", user.PasswordHash)
			assert.True(t, user.Active)
			user.ID = 11
			return user, nil
		})

		user, err := service.CreateUser(&domain.CreateUserRequest{
			Name:     "Novo Usuário",
			Email:    "Novo@Exemplo.com",
			Password: "senha123",
		})

		require.NoError(t, err)
		assert.Equal(t, 11, user.ID)
		assert.Equal(t, "novo@exemplo.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("E-mail já cadastrado é rejeitado", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(hashedUser(t, "senha123", true), nil)

		user, err := service.CreateUser(&domain.CreateUserRequest{
			Name:     "Ana",
			Email:    "ana@exemplo.com",
			Password: "senha123",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		service, _ := newTestAuthenticator(t)

		claims, err := service.ValidateToken("cabecalho.corpo.assinatura")

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(hashedUser(t, "senha123", true), nil)

		token, _, err := service.LoginUser("ana@exemplo.com", "senha123")
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		otherService := NewService(mocks.NewMockUserRepository(ctrl), &config.Config{
			Auth: config.Auth{Secret: "outro-segredo"},
		})

		claims, err := otherService.ValidateToken(token)

		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
