package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/linkapply"
	"github.com/MrSnakeDoc/linkhub/internal/session"
)

type applyLinkRequest struct {
	siteFields
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

type applyLinkResponse struct {
	Message string `json:"message"`
	ApplyID string `json:"applyId"`
}

type pendingLinksResponse struct {
	PendingLinks []domain.LinkApplication `json:"pendingLinks"`
}

type approveLinkRequest struct {
	ApplyID       string `json:"applyId" validate:"required"`
	CategoryIndex *int   `json:"categoryIndex" validate:"required"`
}

type rejectLinkRequest struct {
	ApplyID string `json:"applyId" validate:"required"`
}

// ApplyLink stores a public submission as a pending application.
func ApplyLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applyLinkRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}

		id, err := d.Applications.Submit(r.Context(), linkapply.Submission{
			SiteName:    req.SiteName,
			SiteURL:     req.SiteURL,
			SiteIcon:    req.SiteIcon,
			Description: req.Description,
			Contact:     req.Contact,
		})
		if err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.JSON(w, http.StatusOK, applyLinkResponse{
			Message: "Link application submitted, pending review",
			ApplyID: id,
		})
	}
}

// PendingLinks lists pending applications, most recent first.
func PendingLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := d.Applications.ListPending(r.Context())
		if err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.JSON(w, http.StatusOK, pendingLinksResponse{PendingLinks: pending})
	}
}

// ApproveLink appends the application's site to a category.
func ApproveLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req approveLinkRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Applications.Approve(r.Context(), req.ApplyID, *req.CategoryIndex, actor(r)); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Link application approved")
	}
}

// RejectLink marks a pending application rejected.
func RejectLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rejectLinkRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Applications.Reject(r.Context(), req.ApplyID, actor(r)); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Link application rejected")
	}
}

// actor is the user id of the session attached by mw.RequireSession.
func actor(r *http.Request) string {
	if sess, ok := session.FromContext(r.Context()); ok && sess.UserID != "" {
		return sess.UserID
	}
	return domain.AdminUserID
}
