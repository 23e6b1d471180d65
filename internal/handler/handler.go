package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dan9191/contact-service/internal/middleware"
	"github.com/Dan9191/contact-service/internal/models"
	"github.com/Dan9191/contact-service/internal/repository"
	"github.com/Dan9191/contact-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register handles user registration. A successful signup immediately
// returns a usable token. Every failure, duplicate email included,
// collapses to the same generic 400 body.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warnf("Registration failed: %v", err)
		h.writeError(w, http.StatusBadRequest, "error registering user")
		return
	}

	h.writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}

// Login handles user authentication. Unknown email and wrong password
// produce the identical response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid credentials")
		return
	}

	h.writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}

// ListContacts returns every contact owned by the authenticated user
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	contacts, err := h.svc.ListContacts(r.Context(), ownerID)
	if err != nil {
		h.log.Errorf("Failed to list contacts for user %d: %v", ownerID, err)
		h.writeError(w, http.StatusBadRequest, "error fetching contacts")
		return
	}

	h.writeJSON(w, http.StatusOK, contacts)
}

// CreateContact adds a contact to the authenticated user's list
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.ContactRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.svc.CreateContact(r.Context(), ownerID, req)
	if err != nil {
		h.log.Errorf("Failed to create contact for user %d: %v", ownerID, err)
		h.writeError(w, http.StatusBadRequest, "error adding contact")
		return
	}

	h.writeJSON(w, http.StatusCreated, contact)
}

// UpdateContact replaces all fields of one of the authenticated user's
// contacts. A contact that does not exist for this owner, including one
// owned by somebody else, is a plain 404.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	var req models.ContactRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.svc.UpdateContact(r.Context(), ownerID, contactID, req)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	if err != nil {
		h.log.Errorf("Failed to update contact %d for user %d: %v", contactID, ownerID, err)
		h.writeError(w, http.StatusBadRequest, "error updating contact")
		return
	}

	h.writeJSON(w, http.StatusOK, contact)
}

// DeleteContact removes one of the authenticated user's contacts. Ids that
// never existed for this owner delete successfully all the same.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	if err := h.svc.DeleteContact(r.Context(), ownerID, contactID); err != nil {
		h.log.Errorf("Failed to delete contact %d for user %d: %v", contactID, ownerID, err)
		h.writeError(w, http.StatusBadRequest, "error deleting contact")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportContacts streams the authenticated user's contacts as XML
func (h *Handler) ExportContacts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := h.svc.ExportContacts(r.Context(), ownerID)
	if err != nil {
		h.log.Errorf("Failed to export contacts for user %d: %v", ownerID, err)
		h.writeError(w, http.StatusBadRequest, "error exporting contacts")
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.xml"`)
	w.Write(doc)
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeStrict decodes a JSON body into a fixed-field record, rejecting
// unknown fields.
func decodeStrict(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
