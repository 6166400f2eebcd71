package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/mw"
)

func init() { Register(registerAdmin, requireSession) }

func requireSession(d deps.Deps) func(http.Handler) http.Handler {
	return mw.RequireSession(d.Sessions, d.Logger)
}

func registerAdmin(r chi.Router, d deps.Deps) {
	r.Post("/add-category", handlers.AddCategory(d))
	r.Post("/delete-category", handlers.DeleteCategory(d))
	r.Post("/add-site", handlers.AddSite(d))
	r.Post("/edit-site", handlers.EditSite(d))
	r.Post("/delete-site", handlers.DeleteSite(d))

	r.Get("/pending-links", handlers.PendingLinks(d))
	r.Post("/approve-link", handlers.ApproveLink(d))
	r.Post("/reject-link", handlers.RejectLink(d))
}
