// Package client is the Go data layer for the storefront and admin UIs.
// It wraps the REST API with typed calls and a tri-state page view model.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the server reports an unknown identity.
var ErrNotFound = errors.New("not found")

// Credentials is the locally held plaintext account an authenticated page
// variant attaches as a Basic authorization header.
type Credentials struct {
	Username string
	Password string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *Credentials
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithBasicAuth makes every request carry the given credentials.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.creds = &Credentials{Username: username, Password: password}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Item is the reduced admin-API view of a product inside a catalogue.
type Item struct {
	ID    uint    `json:"id"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type Catalogue struct {
	ID            uint      `json:"id"`
	CatalogueName string    `json:"catalogueName"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"coverImageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	Items         []Item    `json:"items"`
}

type Product struct {
	ID          uint      `json:"id"`
	CatalogueID uint      `json:"catalogueId"`
	ProductName string    `json:"productName"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Material    string    `json:"material"`
	Weight      string    `json:"weight"`
	ImageURLs   []string  `json:"imageUrls"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Admin struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewItem is an embedded item in a catalogue creation payload.
type NewItem struct {
	Code  string  `json:"code"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type NewCatalogue struct {
	CatalogueName string    `json:"catalogueName"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Items         []NewItem `json:"items"`
}

type NewProduct struct {
	CatalogueID uint     `json:"catalogueId"`
	Code        string   `json:"code,omitempty"`
	ProductName string   `json:"productName"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Material    string   `json:"material,omitempty"`
	Weight      string   `json:"weight,omitempty"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

func (c *Client) ListCatalogues(ctx context.Context) ([]Catalogue, error) {
	var catalogues []Catalogue
	if err := c.do(ctx, http.MethodGet, "/api/catalogue", nil, &catalogues); err != nil {
		return nil, err
	}
	return catalogues, nil
}

func (c *Client) GetCatalogue(ctx context.Context, id uint) (*Catalogue, error) {
	var catalogue Catalogue
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/catalogue/%d", id), nil, &catalogue); err != nil {
		return nil, err
	}
	return &catalogue, nil
}

func (c *Client) CreateCatalogue(ctx context.Context, input NewCatalogue) (*Catalogue, error) {
	var catalogue Catalogue
	if err := c.do(ctx, http.MethodPost, "/api/catalogue", input, &catalogue); err != nil {
		return nil, err
	}
	return &catalogue, nil
}

// DeleteCatalogue removes a catalogue and every product it owns.
func (c *Client) DeleteCatalogue(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/catalogue/%d", id), nil, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListAvailableProducts fetches every product and keeps only those the
// storefront should render. Unavailable products stay in the store, they
// are just not listed.
func (c *Client) ListAvailableProducts(ctx context.Context) ([]Product, error) {
	products, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]Product, 0, len(products))
	for _, p := range products {
		if p.IsAvailable {
			available = append(available, p)
		}
	}
	return available, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input NewProduct) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct overwrites the display name and price of an existing
// product; the server preserves every other field.
func (c *Client) UpdateProduct(ctx context.Context, id uint, name string, price float64) (*Product, error) {
	body := struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}{Name: name, Price: price}

	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	var admins []Admin
	if err := c.do(ctx, http.MethodGet, "/admin/", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Client) CreateAdmin(ctx context.Context, name string) (*Admin, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var admin Admin
	if err := c.do(ctx, http.MethodPost, "/admin/", body, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// do issues one request and decodes the JSON response into out. Unknown
// response fields are ignored, so the client tolerates additive server
// changes. A 404 maps to ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		req.SetBasicAuth(c.creds.Username, c.creds.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("server error: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
