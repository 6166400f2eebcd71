package domain

import (
	"encoding/json"
	"testing"
	"time"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDocumentNormalize(t *testing.T) {
	var doc Document
	doc.Normalize()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"categories":[]}` {
		t.Errorf("empty document = %s, want {\"categories\":[]}", data)
	}

	doc = Document{Categories: []Category{{Name: "Dev"}}}
	doc.Normalize()
	if doc.Categories[0].Sites == nil {
		t.Error("Normalize() left nil sites")
	}
	if doc.Categories[0].Color != DefaultCategoryColor {
		t.Errorf("Color = %q, want %q", doc.Categories[0].Color, DefaultCategoryColor)
	}
}

func TestDocumentBounds(t *testing.T) {
	doc := Document{Categories: []Category{
		{Name: "Dev", Sites: []Site{{Name: "GitHub"}, {Name: "GitLab"}}},
		{Name: "Empty", Sites: []Site{}},
	}}

	tests := []struct {
		name string
		c, s int
		want bool
	}{
		{name: "first site", c: 0, s: 0, want: true},
		{name: "last site", c: 0, s: 1, want: true},
		{name: "site past end", c: 0, s: 2, want: false},
		{name: "negative site", c: 0, s: -1, want: false},
		{name: "empty category", c: 1, s: 0, want: false},
		{name: "category past end", c: 2, s: 0, want: false},
		{name: "negative category", c: -1, s: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.ValidSite(tt.c, tt.s); got != tt.want {
				t.Errorf("ValidSite(%d, %d) = %v, want %v", tt.c, tt.s, got, tt.want)
			}
		})
	}

	if !doc.HasCategory("Dev") || doc.HasCategory("dev") {
		t.Error("HasCategory() must be an exact, case-sensitive match")
	}
	if got := doc.SiteCount(); got != 2 {
		t.Errorf("SiteCount() = %d, want 2", got)
	}
}
