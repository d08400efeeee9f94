package configuring

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

// Configurer expõe a leitura e escrita da configuração por usuário
type Configurer interface {
	Load(userID string) (*domain.UserConfig, error)
	Save(userID string, cfg *domain.UserConfig) (*domain.UserConfig, error)
}

type Service struct {
	configRepo repository.UserConfigRepository
}

func NewService(configRepo repository.UserConfigRepository) Configurer {
	return &Service{configRepo: configRepo}
}

// Load retorna a configuração salva do usuário ou os valores padrão quando
// nenhuma configuração existe
func (s *Service) Load(userID string) (*domain.UserConfig, error) {
	cfg, err := s.configRepo.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "Erro ao consultar a configuração do usuário")
	}

	if cfg == nil {
		defaults := domain.NewDefaultUserConfig()
		defaults.UserID = userID
		return defaults, nil
	}

	return cfg, nil
}

// Save persiste a configuração do usuário
func (s *Service) Save(userID string, cfg *domain.UserConfig) (*domain.UserConfig, error) {
	if cfg == nil {
		return nil, errors.New("configuração inválida")
	}

	cfg.UserID = userID
	cfg.UpdatedAt = time.Now().UTC()

	if err := s.configRepo.SaveOrUpdate(cfg); err != nil {
		return nil, errors.Wrap(err, "Erro ao salvar a configuração do usuário")
	}

	return cfg, nil
}
