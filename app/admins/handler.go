package admins

import (
	"encoding/json"
	"net/http"

	"github.com/nathmaker/storefront/app/api"
	"github.com/nathmaker/storefront/models"
)

type AdminResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AdminProvider interface {
	GetAllAdmins() ([]models.Admin, error)
	CreateAdmin(admin *models.Admin) error
}

type AdminHandler struct {
	repo AdminProvider
}

func NewAdminHandler(r AdminProvider) *AdminHandler {
	return &AdminHandler{repo: r}
}

func (h *AdminHandler) HandleHello(w http.ResponseWriter, r *http.Request) {
	api.WriteMessage(w, http.StatusOK, "Hello from the storefront API!")
}

func (h *AdminHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	admins, err := h.repo.GetAllAdmins()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch admins")
		return
	}

	response := make([]AdminResponse, len(admins))
	for i, a := range admins {
		response[i] = AdminResponse{
			ID:   a.ID,
			Name: a.Name,
		}
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.WriteError(w, http.StatusBadRequest, "Missing name")
		return
	}

	admin := &models.Admin{
		Name: input.Name,
	}

	if err := h.repo.CreateAdmin(admin); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	api.WriteJSON(w, http.StatusCreated, AdminResponse{
		ID:   admin.ID,
		Name: admin.Name,
	})
}
