package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login exchanges the admin password for a session token.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decode(w, r, &req); err != nil {
			respond.Fail(w, http.StatusBadRequest, domain.ErrMalformedBody.Message)
			return
		}

		if !d.Password.Verify(req.Password) {
			respond.Fail(w, http.StatusUnauthorized, "Invalid password")
			return
		}

		token, err := d.Sessions.Create(r.Context(), domain.AdminUserID)
		if err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.JSON(w, http.StatusOK, loginResponse{Token: token, Message: "Login successful"})
	}
}
