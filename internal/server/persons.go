package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/desertthunder/farewell/internal/models"
)

// personID parses the {id} path variable. A non-numeric id responds 400 and
// reports false; the handler must return without touching the store.
func personID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return id, true
}

// handleListPersons returns the full current collection. An empty store
// yields [], never null.
func (s *Server) handleListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := s.store.GetAllPersons()
	if err != nil {
		s.logger.Error("failed to fetch persons", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch persons")
		return
	}
	if persons == nil {
		persons = []models.Person{}
	}
	respondJSON(w, http.StatusOK, persons)
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := personID(w, r)
	if !ok {
		return
	}

	person, found, err := s.store.GetPerson(id)
	if err != nil {
		s.logger.Error("failed to fetch person", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch person")
		return
	}
	if !found {
		respondMessage(w, http.StatusNotFound, "Person not found")
		return
	}
	respondJSON(w, http.StatusOK, person)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var input models.PersonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondValidation(w, models.FieldErrors{"body": "must be a JSON object"})
		return
	}
	if fe := input.Validate(); fe != nil {
		respondValidation(w, fe)
		return
	}

	person, err := s.store.CreatePerson(input)
	if err != nil {
		s.logger.Error("failed to create person", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to create person")
		return
	}
	respondJSON(w, http.StatusCreated, person)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := personID(w, r)
	if !ok {
		return
	}

	var patch models.PersonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondValidation(w, models.FieldErrors{"body": "must be a JSON object"})
		return
	}
	if fe := patch.Validate(); fe != nil {
		respondValidation(w, fe)
		return
	}

	person, found, err := s.store.UpdatePerson(id, patch)
	if err != nil {
		s.logger.Error("failed to update person", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to update person")
		return
	}
	if !found {
		respondMessage(w, http.StatusNotFound, "Person not found")
		return
	}
	respondJSON(w, http.StatusOK, person)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := personID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeletePerson(id)
	if err != nil {
		s.logger.Error("failed to delete person", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to delete person")
		return
	}
	if !deleted {
		respondMessage(w, http.StatusNotFound, "Person not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
