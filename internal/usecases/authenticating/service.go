package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube"
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"github.com/vfg2006/profit-manager-api/pkg/apiErrors"
)

const tokenTTL = 24 * time.Hour

// CallbackResult é o resultado do fluxo de callback OAuth: a sessão da loja
// persistida e o token JWT emitido para o dashboard.
type CallbackResult struct {
	Session *domain.StoreSession
	Token   string
}

type Authenticator interface {
	AuthorizeURL() (string, error)
	HandleCallback(code string) (*CallbackResult, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetSession(userID string) (*domain.StoreSession, error)
	TestConnection(accessToken string) (bool, error)
}

type Service struct {
	integrator  tiendanube.TiendanubeIntegrator
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewService(
	integrator tiendanube.TiendanubeIntegrator,
	sessionRepo repository.SessionRepository,
	cfg *config.Config,
) Authenticator {
	return &Service{
		integrator:  integrator,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// AuthorizeURL retorna a URL de autorização OAuth da Tiendanube
func (s *Service) AuthorizeURL() (string, error) {
	return s.integrator.AuthorizeURL()
}

// HandleCallback conclui o fluxo OAuth: troca o código por um token de
// acesso, consulta os dados da loja, persiste a sessão e emite o JWT.
func (s *Service) HandleCallback(code string) (*CallbackResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, NewAuthError(ErrMissingAuthCode, apiErrors.ErrMissingRequiredData, "O parâmetro code é obrigatório")
	}

	token, err := s.integrator.ExchangeCode(code)
	if err != nil {
		return nil, NewAuthError(ErrExchangeFailed, apiErrors.ErrExternalService, err.Error())
	}

	store, err := s.integrator.GetStoreInfo(token.AccessToken)
	if err != nil {
		return nil, NewAuthError(ErrStoreInfoFailed, apiErrors.ErrExternalService, err.Error())
	}

	now := time.Now().UTC()
	session := &domain.StoreSession{
		UserID:      fmt.Sprintf("store-%d", token.UserID),
		StoreID:     fmt.Sprintf("%d", token.UserID),
		StoreName:   store.MainName(),
		AccessToken: token.AccessToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessionRepo.SaveOrUpdate(session); err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, session.UserID, "Erro ao salvar a sessão da loja")
	}

	jwtToken, err := generateJWT(session, s.cfg.SecretKey)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, session.UserID, "Erro ao gerar token de autenticação")
	}

	return &CallbackResult{Session: session, Token: jwtToken}, nil
}

// GetSession busca a sessão persistida da loja
func (s *Service) GetSession(userID string) (*domain.StoreSession, error) {
	session, err := s.sessionRepo.GetByUserID(userID)
	if err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar a sessão da loja")
	}

	if session == nil {
		return nil, NewUserAuthError(ErrSessionNotFound, apiErrors.ErrInvalidToken, userID, "Sessão da loja não encontrada")
	}

	return session, nil
}

// TestConnection verifica se o token de acesso informado alcança a API da Tiendanube
func (s *Service) TestConnection(accessToken string) (bool, error) {
	return s.integrator.CheckConnection(tiendanubedomain.CheckConnectionParams{
		AccessToken: accessToken,
	})
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func generateJWT(session *domain.StoreSession, secretKey string) (string, error) {
	return signJWT(session, secretKey, time.Now().Add(tokenTTL))
}

func signJWT(session *domain.StoreSession, secretKey string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserID:    session.UserID,
		StoreID:   session.StoreID,
		StoreName: session.StoreName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
