package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("page.html").
	Funcs(template.FuncMap{
		"isImage": domain.IsAbsoluteURL,
		// Colors are validated as hex on write; anything else is dropped.
		"css": func(color string) template.CSS {
			if domain.ValidateColor(color) != nil {
				return template.CSS(domain.DefaultCategoryColor)
			}
			return template.CSS(color)
		},
	}).
	ParseFS(templatesFS, "templates/page.html"))

type pageData struct {
	Title      string
	Categories []domain.Category
}

// Page renders the navigation document as HTML.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Documents.Read(r.Context())
		if err != nil {
			logFailure(d.Logger, r, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, pageData{Title: d.SiteTitle, Categories: doc.Categories}); err != nil {
			logFailure(d.Logger, r, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

// Data returns the raw navigation document.
func Data(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Documents.Read(r.Context())
		if err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.JSON(w, http.StatusOK, doc)
	}
}

func logFailure(log logger.Logger, r *http.Request, err error) {
	log.Error("request failed",
		logger.String("method", r.Method),
		logger.String("path", r.URL.Path),
		logger.Error(err))
}
