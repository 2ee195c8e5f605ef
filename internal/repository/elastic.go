package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/gizemabali/retaildiscountsapi/internal/domain"
)

// ElasticIndex implements SearchIndex over an Elasticsearch cluster
type ElasticIndex struct {
	client *elasticsearch.Client
}

func NewElasticIndex(addresses []string) (*ElasticIndex, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return &ElasticIndex{client: client}, nil
}

var _ SearchIndex = (*ElasticIndex)(nil)

// searchBody renders q as a bool/should of term clauses.
func searchBody(q Query) ([]byte, error) {
	should := make([]map[string]any, 0, len(q.Should))
	for _, t := range q.Should {
		should = append(should, map[string]any{
			"term": map[string]any{t.Field: map[string]any{"value": t.Value}},
		})
	}
	body := map[string]any{
		"query": map[string]any{"bool": map[string]any{"should": should}},
	}
	return json.Marshal(body)
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source domain.Product `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (e *ElasticIndex) Search(ctx context.Context, index string, q Query, from, size int) ([]domain.Product, error) {
	body, err := searchBody(q)
	if err != nil {
		return nil, err
	}
	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(index),
		e.client.Search.WithBody(bytes.NewReader(body)),
		e.client.Search.WithFrom(from),
		e.client.Search.WithSize(size),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("%w: search %s: %s", ErrUnavailable, index, res.Status())
	}
	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", ErrUnavailable, err)
	}
	out := make([]domain.Product, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (e *ElasticIndex) Index(ctx context.Context, index string, doc any, id string) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	opts := []func(*esapi.IndexRequest){
		e.client.Index.WithContext(ctx),
	}
	if id != "" {
		opts = append(opts, e.client.Index.WithDocumentID(id))
	}
	res, err := e.client.Index(index, bytes.NewReader(payload), opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return "", fmt.Errorf("%w: index %s: %s", ErrUnavailable, index, res.Status())
	}
	var parsed struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode index response: %w", err)
	}
	return parsed.ID, nil
}
