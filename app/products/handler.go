package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/nathmaker/storefront/app/api"
	"github.com/nathmaker/storefront/models"
)

// ProductResponse is the storefront view of a product. The gorm
// back-reference to the owning catalogue is excluded; only the plain
// catalogueId foreign key is exposed.
type ProductResponse struct {
	ID          uint      `json:"id"`
	CatalogueID uint      `json:"catalogueId"`
	ProductName string    `json:"productName"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Material    string    `json:"material,omitempty"`
	Weight      string    `json:"weight,omitempty"`
	ImageURLs   []string  `json:"imageUrls"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateNameAndPrice(id uint, name string, price decimal.Decimal) (*models.Product, error)
	DeleteByID(id uint) error
}

type ProductHandler struct {
	repo ProductProvider
}

func NewProductHandler(r ProductProvider) *ProductHandler {
	return &ProductHandler{repo: r}
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.GetAllProducts()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	response := make([]ProductResponse, len(res))
	for i, p := range res {
		response[i] = toResponse(&p)
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(product))
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CatalogueID uint     `json:"catalogueId"`
		Code        string   `json:"code"`
		ProductName string   `json:"productName"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Material    string   `json:"material"`
		Weight      string   `json:"weight"`
		ImageURLs   []string `json:"imageUrls"`
		IsAvailable *bool    `json:"isAvailable"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.ProductName == "" {
		api.WriteError(w, http.StatusBadRequest, "Missing productName")
		return
	}
	if input.Price < 0 {
		api.WriteError(w, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	product := &models.Product{
		CatalogueID: input.CatalogueID,
		Code:        input.Code,
		ProductName: input.ProductName,
		Description: input.Description,
		Price:       decimal.NewFromFloat(input.Price),
		Material:    input.Material,
		Weight:      input.Weight,
		ImageURLs:   pq.StringArray(input.ImageURLs),
		IsAvailable: available,
	}

	if err := h.repo.CreateProduct(product); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(product))
}

// HandleUpdate overwrites only the display name and price of an existing
// product. Every other field, including the owning catalogue, is preserved.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.WriteError(w, http.StatusBadRequest, "Missing name")
		return
	}
	if input.Price < 0 {
		api.WriteError(w, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	product, err := h.repo.UpdateNameAndPrice(id, input.Name, decimal.NewFromFloat(input.Price))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(product))
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteByID(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteMessage(w, http.StatusNotFound, "Product not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	api.WriteMessage(w, http.StatusOK, "Product deleted successfully")
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}

func toResponse(p *models.Product) ProductResponse {
	imageURLs := []string(p.ImageURLs)
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		CatalogueID: p.CatalogueID,
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Material:    p.Material,
		Weight:      p.Weight,
		ImageURLs:   imageURLs,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
	}
}
