package homepage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return p
}

func TestLoaderLoad(t *testing.T) {
	services := writeFile(t, "services.yaml", `---
- Infrastructure:
    - AdGuard Home:
        icon: adguard-home.svg
        href: https://adguard.domain.ext
        description: Network-wide ads & trackers blocking DNS server
`)
	bookmarks := writeFile(t, "bookmarks.yaml", `---
- Developer:
    - Github:
        - abbr: GH
          href: https://github.com/
- Infrastructure:
    - Cloudflare:
        - abbr: CF
          href: https://dash.cloudflare.com/
`)

	cats, err := NewLoader(services, bookmarks).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cats) != 2 {
		t.Fatalf("Load() returned %d categories, want 2: %+v", len(cats), cats)
	}
	if cats[0].Name != "Infrastructure" || len(cats[0].Sites) != 2 {
		t.Errorf("first category = %+v, want Infrastructure with 2 sites", cats[0])
	}
	if cats[1].Name != "Developer" || cats[1].Sites[0].URL != "https://github.com/" {
		t.Errorf("second category = %+v", cats[1])
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	services := writeFile(t, "services.yaml", `---
- Infrastructure:
    - AdGuard Home:
        icon: adguard-home.svg
        href: {{HOMEPAGE_VAR_ADGUARD_URL}}
        description: Test
    - Traefik:
        href: https://traefik.domain.ext
`)

	cats, err := NewLoader(services, "").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cats) != 1 || len(cats[0].Sites) != 1 {
		t.Fatalf("Load() = %+v, want only Traefik", cats)
	}
	if cats[0].Sites[0].Name != "Traefik" {
		t.Errorf("site = %+v", cats[0].Sites[0])
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	_, err := NewLoader("/nonexistent/path/services.yaml", "").Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	bookmarks := writeFile(t, "bookmarks.yaml", "- Developer: [unterminated\n")
	if _, err := NewLoader("", bookmarks).Load(); err == nil {
		t.Error("Load() with malformed YAML should return error")
	}
}

func TestLoaderConfigured(t *testing.T) {
	if NewLoader("", "").Configured() {
		t.Error("Configured() = true with no files")
	}
	if !NewLoader("", "b.yaml").Configured() {
		t.Error("Configured() = false with a bookmarks file")
	}
}

func TestStripTemplateVariablesFunc(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "single template variable",
			input:    []byte("url: {{HOMEPAGE_VAR_URL}}"),
			expected: "url: \"\"",
		},
		{
			name:     "no template variables",
			input:    []byte("plain text"),
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripTemplateVariables(tt.input)
			if string(result) != tt.expected {
				t.Errorf("stripTemplateVariables() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}
