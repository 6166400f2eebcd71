// Package homepage imports a gethomepage.dev configuration (services.yaml
// and bookmarks.yaml) as navigation categories. It only runs when the store
// holds no document yet.
package homepage

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// Homepage substitutes {{HOMEPAGE_VAR_*}} at render time; we have no values for them.
var templateVar = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Loader reads the two Homepage files. Either path may be empty.
type Loader struct {
	servicesPath  string
	bookmarksPath string
}

// NewLoader creates a loader for the given files.
func NewLoader(servicesPath, bookmarksPath string) *Loader {
	return &Loader{
		servicesPath:  servicesPath,
		bookmarksPath: bookmarksPath,
	}
}

// Configured reports whether at least one source file was given.
func (l *Loader) Configured() bool {
	return l.servicesPath != "" || l.bookmarksPath != ""
}

// Load parses every configured file and returns the merged categories,
// services first. A category present in both files gets a single entry.
func (l *Loader) Load() ([]domain.Category, error) {
	var cats []domain.Category

	if l.servicesPath != "" {
		var cfg ServicesConfig
		if err := readYAML(l.servicesPath, &cfg); err != nil {
			return nil, fmt.Errorf("services file: %w", err)
		}
		cats = MergeCategories(cats, MapServices(cfg))
	}

	if l.bookmarksPath != "" {
		var cfg BookmarksConfig
		if err := readYAML(l.bookmarksPath, &cfg); err != nil {
			return nil, fmt.Errorf("bookmarks file: %w", err)
		}
		cats = MergeCategories(cats, MapBookmarks(cfg))
	}

	return cats, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	data = stripTemplateVariables(data)
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// stripTemplateVariables replaces {{...}} with an empty YAML string.
func stripTemplateVariables(data []byte) []byte {
	return templateVar.ReplaceAll(data, []byte(`""`))
}
