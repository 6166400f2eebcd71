package domain

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#6366f1"

// Document is the whole navigation tree.
//
// It is stored as a single value and replaced wholesale on every mutation.
// Categories and sites carry no stable id: clients address them by position,
// and those positions are only valid until the next mutation.
type Document struct {
	Categories []Category `json:"categories"`
}

// Category groups sites under a display name.
// Deleting a category deletes every site it owns.
type Category struct {
	Name  string `json:"name"`
	Sites []Site `json:"sites"`
	Color string `json:"color"`
}

// Site is a single bookmarked link.
type Site struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// Icon is either an icon-font class (ex: "fas fa-link") or an absolute image URL.
	Icon string `json:"icon"`
}

// EmptyDocument returns the first-run document.
func EmptyDocument() Document {
	return Document{Categories: []Category{}}
}

// Normalize replaces nil slices with empty ones so the JSON form is always
// `{"categories":[]}` and `"sites":[]`, never null.
func (d *Document) Normalize() {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	for i := range d.Categories {
		if d.Categories[i].Sites == nil {
			d.Categories[i].Sites = []Site{}
		}
		if d.Categories[i].Color == "" {
			d.Categories[i].Color = DefaultCategoryColor
		}
	}
}

// HasCategory reports whether a category with exactly this name exists.
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ValidCategory reports whether i addresses an existing category.
func (d *Document) ValidCategory(i int) bool {
	return i >= 0 && i < len(d.Categories)
}

// ValidSite reports whether (c, s) addresses an existing site.
func (d *Document) ValidSite(c, s int) bool {
	return d.ValidCategory(c) && s >= 0 && s < len(d.Categories[c].Sites)
}

// SiteCount returns the number of sites across all categories.
func (d *Document) SiteCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Sites)
	}
	return n
}
