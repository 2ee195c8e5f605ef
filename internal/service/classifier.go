package service

import (
	"context"

	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
)

// pageSize is the fixed classifier/browse page size.
const pageSize = 100

// classification holds one page of products split by type.
type classification struct {
	groceries map[string]int64
	other     map[string]int64
}

// splitPage partitions a page of hits into grocery and non-grocery price
// maps keyed by product name.
func splitPage(hits []domain.Product) classification {
	c := classification{
		groceries: make(map[string]int64),
		other:     make(map[string]int64),
	}
	for _, p := range hits {
		if p.Type == domain.TypeGroceries {
			c.groceries[p.ProductName] = p.Price
		} else {
			c.other[p.ProductName] = p.Price
		}
	}
	return c
}

// merge folds a page's split into the accumulated maps; last write wins when
// a name repeats across pages.
func (c classification) merge(page classification) {
	for name, price := range page.groceries {
		c.groceries[name] = price
	}
	for name, price := range page.other {
		c.other[name] = price
	}
}

// collectPages walks the query exhaustively: page k at offset k*pageSize,
// stopping once a page comes back under-full. Any search error aborts the
// walk and discards partial results.
func collectPages(ctx context.Context, idx repository.SearchIndex, index string, q repository.Query, fn func([]domain.Product)) error {
	for from := 0; ; from += pageSize {
		hits, err := idx.Search(ctx, index, q, from, pageSize)
		if err != nil {
			return err
		}
		fn(hits)
		if len(hits) < pageSize {
			return nil
		}
	}
}

// classify retrieves every product matching q and returns the accumulated
// grocery/other price maps.
func classify(ctx context.Context, idx repository.SearchIndex, index string, q repository.Query) (classification, error) {
	acc := classification{
		groceries: make(map[string]int64),
		other:     make(map[string]int64),
	}
	err := collectPages(ctx, idx, index, q, func(hits []domain.Product) {
		acc.merge(splitPage(hits))
	})
	if err != nil {
		return classification{}, err
	}
	return acc, nil
}
