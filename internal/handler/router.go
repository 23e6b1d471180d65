package handler

import (
	"github.com/Dan9191/contact-service/internal/config"
	"github.com/Dan9191/contact-service/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter mounts all routes. Auth endpoints are public; everything under
// /contacts requires a bearer token.
func NewRouter(h *Handler, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// Protected routes
	authRouter := r.PathPrefix("/contacts").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("", h.ListContacts).Methods("GET")
	authRouter.HandleFunc("", h.CreateContact).Methods("POST")
	authRouter.HandleFunc("/export", h.ExportContacts).Methods("GET")
	authRouter.HandleFunc("/{id}", h.UpdateContact).Methods("PUT")
	authRouter.HandleFunc("/{id}", h.DeleteContact).Methods("DELETE")

	return r
}
