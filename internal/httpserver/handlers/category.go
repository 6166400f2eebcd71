package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
)

type addCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

type deleteCategoryRequest struct {
	CategoryIndex *int `json:"categoryIndex" validate:"required"`
}

// AddCategory appends an empty category; names must be unique.
func AddCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addCategoryRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Documents.AddCategory(r.Context(), req.Name, req.Color); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Category added successfully")
	}
}

// DeleteCategory removes a category and every site in it.
func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteCategoryRequest
		if err := decode(w, r, &req); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		if err := d.Documents.DeleteCategory(r.Context(), *req.CategoryIndex); err != nil {
			respond.Error(w, r, d.Logger, err)
			return
		}
		respond.Message(w, "Category deleted successfully")
	}
}
