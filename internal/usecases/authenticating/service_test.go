package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/talent-commerce-api/infrastructure/repository/mocks"
	"github.com/vfg2006/talent-commerce-api/internal/config"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "chave-de-teste"}
	return NewService(mockRepo, cfg), mockRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Ana",
			Email:        "ana@example.com",
			Active:       true,
			RoleID:       1,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
		}
	}

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(repo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Email vazio rejeitado sem consultar o banco",
			email:       "",
			password:    "Senha@Forte1",
			setup:       func(repo *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "ana@example.com",
			password: "Senha@Forte1",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "ana@example.com",
			password: "Senha@Forte1",
			setup: func(repo *mocks.MockUserRepository) {
				user := activeUser(t)
				user.Active = false
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@example.com",
			password: "senha-errada",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(activeUser(t), nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Erro de banco de dados",
			email:    "ana@example.com",
			password: "Senha@Forte1",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, errors.New("conexão recusada"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newTestService(t)
			tt.setup(mockRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			assert.Empty(t, token)
			require.Error(t, err)
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			if tt.expectedErr != ErrDatabaseOperation {
				assert.ErrorIs(t, authErr.Err, tt.expectedErr)
			}
		})
	}
}

func TestService_LoginUser_Sucesso(t *testing.T) {
	service, mockRepo := newTestService(t)

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		Active:       true,
		RoleID:       2,
		PasswordHash: hashPassword(t, "Senha@Forte1"),
	}

	// O email é normalizado (minúsculas, sem espaços) antes da consulta
	mockRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	token, err := service.LoginUser("  Ana@Example.com ", "Senha@Forte1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.True(t, claims.UserActive)
}

func TestService_ValidateToken_Invalido(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("token-que-nao-e-jwt")
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Email: "ana@example.com"})
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, authErr.Err, ErrMissingRequiredData)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().
			GetUserByEmail("ana@example.com").
			Return(&domain.User{ID: 1, Email: "ana@example.com"}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "ana@example.com",
			PasswordHash: "Senha@Forte1",
		})
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, authErr.Err, ErrUserAlreadyExists)
	})

	t.Run("Criação com senha hasheada e conta inativa", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				// A senha nunca é persistida em texto claro
				assert.NotEqual(t, "Senha@Forte1", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Forte1")))
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				user.ID = 10
				return user, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        " Ana@Example.com ",
			PasswordHash: "Senha@Forte1",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.Equal(t, "ana@example.com", created.Email)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha forte", password: "Senha@Forte1", valid: true},
		{name: "Muito curta", password: "S@f1", valid: false},
		{name: "Sem maiúscula", password: "senha@forte1", valid: false},
		{name: "Sem minúscula", password: "SENHA@FORTE1", valid: false},
		{name: "Sem número", password: "Senha@Forte", valid: false},
		{name: "Sem caractere especial", password: "SenhaForte1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	t.Run("Solicitante sem perfil de administrador", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: 3}, nil)

		_, err := service.GenerateStrongPassword(2, 5)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Administrador redefine a senha do alvo", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		mockRepo.EXPECT().GetUserByID(5).Return(&domain.User{ID: 5, RoleID: 3}, nil)

		var savedHash string
		mockRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				savedHash = user.PasswordHash
				return nil
			})

		password, err := service.GenerateStrongPassword(1, 5)
		require.NoError(t, err)
		assert.Len(t, password, 12)

		// A senha gerada atende aos próprios requisitos de força
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte(password)))
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{
			ID:           1,
			PasswordHash: hashPassword(t, "Senha@Atual1"),
		}, nil)

		err := service.ChangePassword(1, "senha-errada", "Senha@Nova1")
		assert.Error(t, err)
	})

	t.Run("Nova senha fraca rejeitada", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{
			ID:           1,
			PasswordHash: hashPassword(t, "Senha@Atual1"),
		}, nil)

		err := service.ChangePassword(1, "Senha@Atual1", "fraca")
		assert.Error(t, err)
	})

	t.Run("Troca bem sucedida", func(t *testing.T) {
		service, mockRepo := newTestService(t)

		mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{
			ID:           1,
			PasswordHash: hashPassword(t, "Senha@Atual1"),
		}, nil)
		mockRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Nova1")))
				return nil
			})

		assert.NoError(t, service.ChangePassword(1, "Senha@Atual1", "Senha@Nova1"))
	})
}

func TestService_UpdateUser(t *testing.T) {
	service, mockRepo := newTestService(t)

	name := "Ana Clara"
	active := true

	mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID:       1,
		Name:     "Ana",
		Lastname: "Silva",
		Email:    "ana@example.com",
		RoleID:   3,
	}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			// Campos não informados permanecem inalterados
			assert.Equal(t, "Ana Clara", user.Name)
			assert.Equal(t, "Silva", user.Lastname)
			assert.True(t, user.Active)
			assert.Equal(t, 3, user.RoleID)
			return nil
		})

	err := service.UpdateUser(&domain.UpdateUserRequest{ID: 1, Name: &name, Active: &active})
	assert.NoError(t, err)
}

func TestService_GetUserProfile(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID:           1,
		Name:         "Ana",
		PasswordHash: "hash-sensivel",
	}, nil)

	user, err := service.GetUserProfile(1)
	require.NoError(t, err)

	// O hash de senha nunca sai no perfil
	assert.Empty(t, user.PasswordHash)
}
