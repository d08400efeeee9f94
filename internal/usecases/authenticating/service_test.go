package authenticating

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	tiendanubemocks "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/mocks"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *tiendanubemocks.MockTiendanubeIntegrator, *mocks.MockSessionRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockIntegrator := tiendanubemocks.NewMockTiendanubeIntegrator(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)

	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	service := NewService(mockIntegrator, mockSessionRepo, cfg).(*Service)

	return service, mockIntegrator, mockSessionRepo
}

func TestService_HandleCallback(t *testing.T) {
	t.Run("Fluxo completo - troca o código, persiste a sessão e emite JWT", func(t *testing.T) {
		service, mockIntegrator, mockSessionRepo := newTestService(t)

		mockIntegrator.EXPECT().
			ExchangeCode("codigo-oauth").
			Return(&tiendanubedomain.Token{
				AccessToken: "token-de-acesso",
				TokenType:   "bearer",
				UserID:      123456,
			}, nil)

		mockIntegrator.EXPECT().
			GetStoreInfo("token-de-acesso").
			Return(&tiendanubedomain.Store{
				Name: map[string]string{"es": "Mi Tienda"},
			}, nil)

		mockSessionRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(session *domain.StoreSession) error {
				assert.Equal(t, "store-123456", session.UserID)
				assert.Equal(t, "123456", session.StoreID)
				assert.Equal(t, "Mi Tienda", session.StoreName)
				assert.Equal(t, "token-de-acesso", session.AccessToken)
				return nil
			})

		result, err := service.HandleCallback("codigo-oauth")
		assert.NoError(t, err)
		assert.Equal(t, "store-123456", result.Session.UserID)
		assert.NotEmpty(t, result.Token)

		// O JWT emitido precisa validar com o mesmo segredo
		claims, err := service.ValidateToken(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "store-123456", claims.UserID)
		assert.Equal(t, "123456", claims.StoreID)
		assert.Equal(t, "Mi Tienda", claims.StoreName)
	})

	t.Run("Código ausente", func(t *testing.T) {
		service, _, _ := newTestService(t)

		result, err := service.HandleCallback("  ")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrMissingAuthCode)
	})

	t.Run("Falha na troca do código", func(t *testing.T) {
		service, mockIntegrator, _ := newTestService(t)

		mockIntegrator.EXPECT().
			ExchangeCode("codigo-invalido").
			Return(nil, errors.New("invalid_grant"))

		result, err := service.HandleCallback("codigo-invalido")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrExchangeFailed)
	})

	t.Run("Falha ao consultar a loja", func(t *testing.T) {
		service, mockIntegrator, _ := newTestService(t)

		mockIntegrator.EXPECT().
			ExchangeCode("codigo-oauth").
			Return(&tiendanubedomain.Token{AccessToken: "token", UserID: 1}, nil)

		mockIntegrator.EXPECT().
			GetStoreInfo("token").
			Return(nil, errors.New("unauthorized"))

		result, err := service.HandleCallback("codigo-oauth")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrStoreInfoFailed)
	})

	t.Run("Falha ao persistir a sessão", func(t *testing.T) {
		service, mockIntegrator, mockSessionRepo := newTestService(t)

		mockIntegrator.EXPECT().
			ExchangeCode("codigo-oauth").
			Return(&tiendanubedomain.Token{AccessToken: "token", UserID: 1}, nil)

		mockIntegrator.EXPECT().
			GetStoreInfo("token").
			Return(&tiendanubedomain.Store{Name: map[string]string{"es": "Tienda"}}, nil)

		mockSessionRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("banco indisponível"))

		result, err := service.HandleCallback("codigo-oauth")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("Token malformado", func(t *testing.T) {
		service, _, _ := newTestService(t)

		claims, err := service.ValidateToken("nao-e-um-jwt")
		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Token expirado", func(t *testing.T) {
		service, _, _ := newTestService(t)

		session := &domain.StoreSession{UserID: "store-1", StoreID: "1", StoreName: "Tienda"}
		expired, err := signJWT(session, "segredo-de-teste", time.Now().Add(-time.Hour))
		assert.NoError(t, err)

		claims, err := service.ValidateToken(expired)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		service, _, _ := newTestService(t)

		session := &domain.StoreSession{UserID: "store-1"}
		token, err := generateJWT(session, "outro-segredo")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestService_GetSession(t *testing.T) {
	t.Run("Sessão encontrada", func(t *testing.T) {
		service, _, mockSessionRepo := newTestService(t)

		mockSessionRepo.EXPECT().
			GetByUserID("store-1").
			Return(&domain.StoreSession{UserID: "store-1", AccessToken: "token"}, nil)

		session, err := service.GetSession("store-1")
		assert.NoError(t, err)
		assert.Equal(t, "token", session.AccessToken)
	})

	t.Run("Sessão inexistente", func(t *testing.T) {
		service, _, mockSessionRepo := newTestService(t)

		mockSessionRepo.EXPECT().
			GetByUserID("store-2").
			Return(nil, nil)

		session, err := service.GetSession("store-2")
		assert.Nil(t, session)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_TestConnection(t *testing.T) {
	service, mockIntegrator, _ := newTestService(t)

	mockIntegrator.EXPECT().
		CheckConnection(tiendanubedomain.CheckConnectionParams{AccessToken: "token"}).
		Return(true, nil)

	connected, err := service.TestConnection("token")
	assert.NoError(t, err)
	assert.True(t, connected)
}
