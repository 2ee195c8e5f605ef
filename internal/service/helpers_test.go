package service

import (
	"context"
	"testing"
	"time"

	"github.com/gizemabali/retaildiscountsapi/internal/clock"
	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
)

// frozenClock pins Now for deterministic tenure checks.
type frozenClock struct{ t time.Time }

func (f frozenClock) Now() time.Time { return f.t }

func frozenAt(t *testing.T, stamp string) frozenClock {
	t.Helper()
	parsed, err := clock.Parse(stamp)
	if err != nil {
		t.Fatalf("parse frozen stamp: %v", err)
	}
	return frozenClock{t: parsed}
}

// failingIndex fails every call with the given error.
type failingIndex struct{ err error }

func (f failingIndex) Search(ctx context.Context, index string, q repository.Query, from, size int) ([]domain.Product, error) {
	return nil, f.err
}

func (f failingIndex) Index(ctx context.Context, index string, doc any, id string) (string, error) {
	return "", f.err
}

// countingIndex wraps another index and counts Search calls.
type countingIndex struct {
	repository.SearchIndex
	searches int
}

func (c *countingIndex) Search(ctx context.Context, index string, q repository.Query, from, size int) ([]domain.Product, error) {
	c.searches++
	return c.SearchIndex.Search(ctx, index, q, from, size)
}

func seedCatalog(t *testing.T, ps ...domain.Product) *repository.MemoryIndex {
	t.Helper()
	m := repository.NewMemoryIndex()
	ctx := context.Background()
	for _, p := range ps {
		if _, err := m.Index(ctx, "product", p, ""); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
	return m
}

// scenarioCatalog is the three-product catalog shared by the pricing tests.
func scenarioCatalog(t *testing.T) *repository.MemoryIndex {
	t.Helper()
	return seedCatalog(t,
		domain.Product{ProductName: "RedCarpet", Type: "home", Price: 100},
		domain.Product{ProductName: "BlueDress", Type: "garment", Price: 400},
		domain.Product{ProductName: "Bananas", Type: "groceries", Price: 15},
	)
}

func scenarioBasket() []domain.BasketItem {
	return []domain.BasketItem{
		{ProductName: "RedCarpet", Amount: 1},
		{ProductName: "BlueDress", Amount: 2},
		{ProductName: "Bananas", Amount: 1},
	}
}
