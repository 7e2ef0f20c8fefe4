package catalogue

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nathmaker/storefront/app/api"
	"github.com/nathmaker/storefront/models"
)

// ItemResponse is the admin-API view of a product: the reduced v1 item
// shape. The owning-catalogue reference is deliberately left out to keep
// the payload acyclic.
type ItemResponse struct {
	ID    uint    `json:"id"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type CatalogueResponse struct {
	ID            uint           `json:"id"`
	CatalogueName string         `json:"catalogueName"`
	Description   string         `json:"description,omitempty"`
	CoverImageURL string         `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	Items         []ItemResponse `json:"items"`
}

type CatalogueProvider interface {
	GetAllCatalogues() ([]models.Catalogue, error)
	GetByID(id uint) (*models.Catalogue, error)
	CreateCatalogue(catalogue *models.Catalogue) error
	DeleteCatalogue(id uint) error
}

type CatalogueHandler struct {
	repo CatalogueProvider
}

func NewCatalogueHandler(r CatalogueProvider) *CatalogueHandler {
	return &CatalogueHandler{repo: r}
}

func (h *CatalogueHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	catalogues, err := h.repo.GetAllCatalogues()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch catalogues")
		return
	}

	response := make([]CatalogueResponse, len(catalogues))
	for i, c := range catalogues {
		response[i] = toResponse(c)
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CatalogueHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	c, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCatalogueNotFound) {
			api.WriteError(w, http.StatusNotFound, "Catalogue not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch catalogue")
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(*c))
}

// HandleDelete removes a catalogue and, through the store's cascade, every
// product it owns. An unknown identity leaves store state untouched.
func (h *CatalogueHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteCatalogue(id); err != nil {
		if errors.Is(err, models.ErrCatalogueNotFound) {
			api.WriteMessage(w, http.StatusNotFound, "Catalogue not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to delete catalogue")
		return
	}

	api.WriteMessage(w, http.StatusOK, "Catalogue deleted successfully")
}

func (h *CatalogueHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CatalogueName string `json:"catalogueName"`
		Description   string `json:"description"`
		CoverImageURL string `json:"coverImageUrl"`
		Items         []struct {
			Code  string  `json:"code"`
			Price float64 `json:"price"`
			Type  string  `json:"type"`
		} `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.CatalogueName == "" {
		api.WriteError(w, http.StatusBadRequest, "Missing catalogueName")
		return
	}

	for _, item := range input.Items {
		if item.Code == "" {
			api.WriteError(w, http.StatusBadRequest, "Missing item code")
			return
		}
		if item.Price < 0 {
			api.WriteError(w, http.StatusBadRequest, "Item price cannot be negative")
			return
		}
	}

	catalogue := &models.Catalogue{
		Name:          input.CatalogueName,
		Description:   input.Description,
		CoverImageURL: input.CoverImageURL,
		Products:      make([]models.Product, len(input.Items)),
	}

	for i, item := range input.Items {
		catalogue.Products[i] = models.Product{
			Code:        item.Code,
			ProductName: item.Code,
			Price:       decimal.NewFromFloat(item.Price),
			Type:        item.Type,
			IsAvailable: true,
		}
	}

	// One cascading save: every embedded item is linked to the new
	// catalogue's identity before the insert commits.
	if err := h.repo.CreateCatalogue(catalogue); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Failed to create catalogue")
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(*catalogue))
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid catalogue id")
		return 0, false
	}
	return uint(id), true
}

func toResponse(c models.Catalogue) CatalogueResponse {
	items := make([]ItemResponse, len(c.Products))
	for i, p := range c.Products {
		items[i] = ItemResponse{
			ID:    p.ID,
			Code:  p.Code,
			Price: p.Price.InexactFloat64(),
			Type:  p.Type,
		}
	}
	return CatalogueResponse{
		ID:            c.ID,
		CatalogueName: c.Name,
		Description:   c.Description,
		CoverImageURL: c.CoverImageURL,
		CreatedAt:     c.CreatedAt,
		Items:         items,
	}
}
