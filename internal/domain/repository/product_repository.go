package repository

import (
	"context"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}
