package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
)

// siteFields are shared by add-site and edit-site. Blank-after-trim values
// are rejected again by the document store.
type siteFields struct {
	SiteName string `json:"siteName" validate:"required"`
	SiteURL  string `json:"siteUrl" validate:"required"`
	SiteIcon string `json:"siteIcon" validate:"required"`
}

func (f siteFields) site() domain.Site {
	return domain.Site{Name: f.SiteName, URL: f.SiteURL, Icon: f.SiteIcon}
}

type addSiteRequest struct {
	CategoryIndex *int `json:"categoryIndex" validate:"required"`
	siteFields
}

type editSiteRequest struct {
	CategoryIndex *int `json:"categoryIndex" validate:"required"`
	SiteIndex     *int `json:"siteIndex" validate:"required"`
	siteFields
}

type deleteSiteRequest struct {
	CategoryIndex *int `json:"categoryIndex" validate:"required"`
	SiteIndex     *int `json:"siteIndex" validate:"required"`
}

// AddSite appends a site to the category at categoryIndex.
func AddSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addSiteRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Documents.AddSite(r.Context(), *req.CategoryIndex, req.site()); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Site added successfully")
	}
}

// EditSite replaces the site at (categoryIndex, siteIndex) wholesale.
func EditSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editSiteRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Documents.EditSite(r.Context(), *req.CategoryIndex, *req.SiteIndex, req.site()); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Site updated successfully")
	}
}

// DeleteSite removes the site at (categoryIndex, siteIndex).
func DeleteSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteSiteRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Documents.DeleteSite(r.Context(), *req.CategoryIndex, *req.SiteIndex); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Site deleted successfully")
	}
}
