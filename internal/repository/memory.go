package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/gizemabali/retaildiscountsapi/internal/domain"
)

// MemoryIndex is an in-memory SearchIndex used by tests and the local
// backend. Documents keep insertion order so from/size paging is stable.
type MemoryIndex struct {
	mu   sync.RWMutex
	docs map[string][]storedDoc
}

type storedDoc struct {
	id     string
	fields map[string]any
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{docs: make(map[string][]storedDoc)}
}

var _ SearchIndex = (*MemoryIndex)(nil)

func (m *MemoryIndex) Search(ctx context.Context, index string, q Query, from, size int) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched := make([]storedDoc, 0)
	for _, d := range m.docs[index] {
		if matchesAny(d.fields, q) {
			matched = append(matched, d)
		}
	}
	if from >= len(matched) {
		return []domain.Product{}, nil
	}
	end := from + size
	if end > len(matched) {
		end = len(matched)
	}
	out := make([]domain.Product, 0, end-from)
	for _, d := range matched[from:end] {
		p, err := decodeProduct(d.fields)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryIndex) Index(ctx context.Context, index string, doc any, id string) (string, error) {
	fields, err := encodeFields(doc)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs[index] {
		if d.id == id {
			m.docs[index][i] = storedDoc{id: id, fields: fields}
			return id, nil
		}
	}
	m.docs[index] = append(m.docs[index], storedDoc{id: id, fields: fields})
	return id, nil
}

func matchesAny(fields map[string]any, q Query) bool {
	for _, t := range q.Should {
		if s, ok := fields[t.Field].(string); ok && s == t.Value {
			return true
		}
	}
	return false
}

// encodeFields round-trips the document through JSON, the same view a real
// index has of it.
func encodeFields(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("document is not an object: %w", err)
	}
	return fields, nil
}

func decodeProduct(fields map[string]any) (domain.Product, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return domain.Product{}, err
	}
	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
