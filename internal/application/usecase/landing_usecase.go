package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// LandingUseCase contenido editable de la landing pública.
type LandingUseCase struct {
	repo repository.LandingConfigRepository
}

// NewLandingUseCase construye el caso de uso.
func NewLandingUseCase(repo repository.LandingConfigRepository) *LandingUseCase {
	return &LandingUseCase{repo: repo}
}

// Get devuelve la configuración guardada o los valores por defecto.
func (uc *LandingUseCase) Get(ctx context.Context) (dto.LandingConfigDTO, error) {
	cfg, err := uc.repo.Get(ctx)
	if err != nil {
		return dto.LandingConfigDTO{}, err
	}
	if cfg == nil {
		def := entity.DefaultLandingConfig()
		cfg = &def
	}
	return dto.ToLandingConfigDTO(cfg), nil
}

// Save reemplaza la configuración completa.
func (uc *LandingUseCase) Save(ctx context.Context, in dto.LandingConfigDTO) (dto.LandingConfigDTO, error) {
	cfg := in.ToEntity()
	cfg.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Save(ctx, &cfg); err != nil {
		return dto.LandingConfigDTO{}, err
	}
	return dto.ToLandingConfigDTO(&cfg), nil
}
