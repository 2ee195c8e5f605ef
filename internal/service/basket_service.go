package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gizemabali/retaildiscountsapi/internal/clock"
	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
)

var (
	// ErrMalformedRequest marks bad input shape, including basket lines
	// referencing products the catalog does not know.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrCatalogUnavailable marks a downstream search failure.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// BasketService prices a basket against the product index
type BasketService struct {
	index        repository.SearchIndex
	productIndex string
	clk          clock.Clock
}

func NewBasketService(index repository.SearchIndex, productIndex string, clk clock.Clock) *BasketService {
	return &BasketService{index: index, productIndex: productIndex, clk: clk}
}

// Calculate resolves every basket line in the catalog, splits spend into
// grocery and other, applies the percentage tier and the flat rebate, and
// returns the final total. No partial price is ever produced.
func (s *BasketService) Calculate(ctx context.Context, user domain.UserDetails, basket []domain.BasketItem) (*domain.PriceResult, error) {
	if len(basket) == 0 {
		return nil, fmt.Errorf("%w: empty basket", ErrMalformedRequest)
	}
	amounts := make(map[string]int64, len(basket))
	var q repository.Query
	for _, item := range basket {
		if item.ProductName == "" || item.Amount <= 0 {
			return nil, fmt.Errorf("%w: bad basket line %+v", ErrMalformedRequest, item)
		}
		if _, seen := amounts[item.ProductName]; !seen {
			q.Should = append(q.Should, repository.TermQuery{Field: "productName", Value: item.ProductName})
		}
		// duplicate names: last-seen amount wins
		amounts[item.ProductName] = item.Amount
	}

	split, err := classify(ctx, s.index, s.productIndex, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var groceriesTotal, otherTotal int64
	for name, amount := range amounts {
		switch {
		case hasKey(split.groceries, name):
			groceriesTotal += amount * split.groceries[name]
		case hasKey(split.other, name):
			otherTotal += amount * split.other[name]
		default:
			return nil, fmt.Errorf("%w: unknown product %q", ErrMalformedRequest, name)
		}
	}

	discounted, err := DiscountedOtherTotal(user, otherTotal, s.clk)
	if err != nil {
		return nil, err
	}
	return &domain.PriceResult{TotalPrice: FinalTotal(groceriesTotal, discounted)}, nil
}

func hasKey(m map[string]int64, k string) bool {
	_, ok := m[k]
	return ok
}
