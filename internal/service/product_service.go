package service

import (
	"context"
	"fmt"

	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
)

// ProductService exposes read-only catalog browsing
type ProductService struct {
	index        repository.SearchIndex
	productIndex string
}

func NewProductService(index repository.SearchIndex, productIndex string) *ProductService {
	return &ProductService{index: index, productIndex: productIndex}
}

// ListByType returns every product of the given type, paging the index
// exhaustively.
func (s *ProductService) ListByType(ctx context.Context, productType string) ([]domain.Product, error) {
	if productType == "" {
		return nil, fmt.Errorf("%w: empty type", ErrMalformedRequest)
	}
	out := make([]domain.Product, 0)
	q := repository.Term("type", productType)
	err := collectPages(ctx, s.index, s.productIndex, q, func(hits []domain.Product) {
		out = append(out, hits...)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return out, nil
}
