package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"denpicker/internal/domain"
)

// maxResponseBytes bounds the catalog response body
const maxResponseBytes = 16 << 20

// GraphQLSource fetches the catalog from a GraphQL endpoint
type GraphQLSource struct {
	endpoint string
	shape    Shape
	client   *http.Client
	timeout  time.Duration
	logger   *zap.Logger
}

// GraphQLOption configures a GraphQLSource
type GraphQLOption func(*GraphQLSource)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) GraphQLOption {
	return func(s *GraphQLSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithTimeout bounds a single fetch; zero means no extra bound
func WithTimeout(d time.Duration) GraphQLOption {
	return func(s *GraphQLSource) {
		s.timeout = d
	}
}

// WithLogger sets the source logger
func WithLogger(logger *zap.Logger) GraphQLOption {
	return func(s *GraphQLSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewGraphQLSource creates a source querying endpoint with the shape's query
func NewGraphQLSource(endpoint string, shape Shape, opts ...GraphQLOption) *GraphQLSource {
	s := &GraphQLSource{
		endpoint: endpoint,
		shape:    shape,
		client:   http.DefaultClient,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("catalog")
	return s
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Fetch runs the catalog query once
func (s *GraphQLSource) Fetch(ctx context.Context) ([]domain.CatalogEntry, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	body, err := json.Marshal(graphQLRequest{Query: s.shape.Query()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog request failed: %s", resp.Status)
	}

	entries, err := decodeResponse(raw, s.shape)
	if err != nil {
		return nil, err
	}

	s.logger.Info("catalog fetched",
		zap.String("endpoint", s.endpoint),
		zap.String("shape", string(s.shape)),
		zap.Int("entries", len(entries)),
		zap.Duration("took", time.Since(start)))
	return entries, nil
}

func decodeResponse(raw []byte, shape Shape) ([]domain.CatalogEntry, error) {
	var gr graphQLResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	hasData := len(gr.Data) > 0 && !bytes.Equal(bytes.TrimSpace(gr.Data), []byte("null"))
	if len(gr.Errors) > 0 && !hasData {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("catalog query failed: %s", strings.Join(msgs, "; "))
	}
	return shape.Decode(gr.Data)
}
