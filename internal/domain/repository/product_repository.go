package repository

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// AdjustStock es la única vía de mutación de Stock fuera de la edición
// administrativa: un UPDATE condicional atómico con piso en cero
// (stock + delta >= 0), nunca read-modify-write del caller. Con delta
// negativo y existencia insuficiente retorna InsufficientStockError;
// si el producto no existe, ProductNotFoundError.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Search(ctx context.Context, name, category string) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, product *entity.Product) error
	AdjustStock(ctx context.Context, id string, delta int64) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
