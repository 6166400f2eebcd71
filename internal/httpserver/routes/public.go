package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/mw"
)

func init() { Register(registerPublic) }

func registerPublic(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Page(d))
	r.Get("/data", handlers.Data(d))
	r.Post("/login", handlers.Login(d))

	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:           d.ApplyBurst,
		RefillPerMinute: d.ApplyRefillPerMin,
		MaxEntries:      10_000,
		TrustedProxies:  d.TrustedProxies,
	})).Post("/apply-link", handlers.ApplyLink(d))
}
