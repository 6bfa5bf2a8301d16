package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout  = 8 * time.Second
	defaultCacheTTL = 5 * time.Minute
)

// Client loads the product catalog from the spreadsheet-backed endpoint and
// keeps the normalized list in memory. Loading never fails from the caller's
// point of view: any network or format problem degrades to the embedded
// fallback catalog.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	mu       sync.RWMutex
	products []Product
	loadedAt time.Time
	ttl      time.Duration
}

// NewClient constructs a catalog client. When baseURL is empty the client
// serves the fallback catalog only.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimSpace(baseURL),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
		ttl:     defaultCacheTTL,
	}
}

// SetCacheDuration overrides the in-memory cache duration (primarily for tests).
func (c *Client) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	c.mu.Lock()
	c.ttl = d
	c.mu.Unlock()
}

// Products returns the current catalog, loading it when the cache is cold or
// stale. The returned slice is a copy; products themselves are immutable.
func (c *Client) Products(ctx context.Context) []Product {
	c.mu.RLock()
	fresh := c.products != nil && time.Since(c.loadedAt) < c.ttl
	products := c.products
	c.mu.RUnlock()
	if fresh {
		return append([]Product(nil), products...)
	}
	return c.Refresh(ctx)
}

// Refresh reloads the catalog regardless of cache age and returns the new
// list (possibly the fallback catalog).
func (c *Client) Refresh(ctx context.Context) []Product {
	products := c.load(ctx)
	c.mu.Lock()
	c.products = products
	c.loadedAt = time.Now()
	c.mu.Unlock()
	return append([]Product(nil), products...)
}

// Lookup resolves a single product by id from the current catalog.
func (c *Client) Lookup(ctx context.Context, id string) (Product, bool) {
	for _, p := range c.Products(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Client) load(ctx context.Context) []Product {
	if c.baseURL == "" {
		return FallbackProducts()
	}
	products, err := c.fetchRemote(ctx)
	if err != nil {
		c.log.Warn("catalog: remote load failed, using fallback", zap.Error(err))
		return FallbackProducts()
	}
	c.log.Info("catalog: loaded from remote", zap.Int("products", len(products)))
	return products
}

func (c *Client) fetchRemote(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog: remote status %d", resp.StatusCode)
	}

	var payload struct {
		Products json.RawMessage `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog: decode response: %w", err)
	}
	// a missing key leaves RawMessage nil, but an explicit JSON null arrives
	// as the literal "null"; both mean the sheet gave us no product array
	if payload.Products == nil || bytes.Equal(payload.Products, []byte("null")) {
		return nil, fmt.Errorf("catalog: response has no products field")
	}
	var raw []RawProduct
	if err := json.Unmarshal(payload.Products, &raw); err != nil {
		return nil, fmt.Errorf("catalog: products is not an array: %w", err)
	}

	products := make([]Product, 0, len(raw))
	for _, r := range raw {
		p := Normalize(r)
		if p.Active {
			products = append(products, p)
		}
	}
	return products, nil
}
