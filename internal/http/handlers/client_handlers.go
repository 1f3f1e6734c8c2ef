package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/sales-tracker/internal/models"
	repo "github.com/rogerio-castellano/sales-tracker/internal/repo"
)

func toClientResponse(c models.Client) ClientResponse {
	return ClientResponse{
		Id:          c.ID,
		Name:        c.Name,
		Contact:     c.Contact,
		BonusPoints: c.BonusPoints,
	}
}

func clientIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// CreateClientHandler godoc
// @Summary Add a client
// @Description Unconditional creation for manual client management; duplicates are permitted here, unlike the sale flow's find-or-create
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body ClientRequest true "Client to add"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} map[string]string
// @Router /clients [post]
func CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateClient(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := clientRepo.Create(models.Client{Name: req.Name, Contact: req.Contact})
	if err != nil {
		http.Error(w, "could not create client", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toClientResponse(created))
}

// GetClientsHandler godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} ClientResponse
// @Failure 500 {string} string "Internal error"
// @Router /clients [get]
func GetClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := clientRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch clients", http.StatusInternalServerError)
		return
	}

	response := make([]ClientResponse, len(clients))
	for i, c := range clients {
		response[i] = toClientResponse(c)
	}
	writeJSON(w, http.StatusOK, response)
}

// UpdateClientHandler godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param client body ClientRequest true "Updated client"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /clients/{id} [put]
func UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateClient(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := clientRepo.Update(models.Client{ID: id, Name: req.Name, Contact: req.Contact})
	if err != nil {
		if errors.Is(err, repo.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update client", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(updated))
}

// DeleteClientHandler godoc
// @Summary Delete a client
// @Description Removes the record; past sales keep their reference and list as walk-in
// @Tags clients
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /clients/{id} [delete]
func DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	if err := clientRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete client", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// IncrementBonusHandler godoc
// @Summary Add one bonus point to a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {string} string "Not found"
// @Router /clients/{id}/bonus [post]
func IncrementBonusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	if err := clientRepo.IncrementBonus(id); err != nil {
		if errors.Is(err, repo.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update bonus points", http.StatusInternalServerError)
		return
	}

	client, err := clientRepo.GetByID(id)
	if err != nil {
		http.Error(w, "could not fetch client", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(client))
}
