package homepage

import (
	"path"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

const (
	// Homepage resolves bare icon file names against this repository.
	dashboardIconsBase = "https://cdn.jsdelivr.net/gh/walkxcode/dashboard-icons"
	fallbackIcon       = "fas fa-link"
)

// MapServices turns every services.yaml group into a category. Groups with
// a blank name and services without a usable absolute href are skipped.
func MapServices(cfg ServicesConfig) []domain.Category {
	var cats []domain.Category
	for _, group := range cfg {
		for _, groupName := range sortedKeys(group) {
			if strings.TrimSpace(groupName) == "" {
				continue
			}
			cat := newCategory(groupName)
			for _, entry := range group[groupName] {
				for _, name := range sortedKeys(entry) {
					props := entry[name]
					if site, ok := toSite(name, props.Href, props.Icon); ok {
						cat.Sites = append(cat.Sites, site)
					}
				}
			}
			cats = MergeCategories(cats, []domain.Category{cat})
		}
	}
	return cats
}

// MapBookmarks turns every bookmarks.yaml group into a category. Groups with
// a blank name are skipped.
func MapBookmarks(cfg BookmarksConfig) []domain.Category {
	var cats []domain.Category
	for _, group := range cfg {
		for _, groupName := range sortedKeys(group) {
			if strings.TrimSpace(groupName) == "" {
				continue
			}
			cat := newCategory(groupName)
			for _, entry := range group[groupName] {
				for _, name := range sortedKeys(entry) {
					list := entry[name]
					if len(list) == 0 {
						continue
					}
					props := list[0]
					if site, ok := toSite(name, props.Href, props.Icon); ok {
						cat.Sites = append(cat.Sites, site)
					}
				}
			}
			cats = MergeCategories(cats, []domain.Category{cat})
		}
	}
	return cats
}

// MergeCategories appends add to base. Sites of a category whose name is
// already in base are appended to that category; empty categories are dropped.
func MergeCategories(base, add []domain.Category) []domain.Category {
	for _, c := range add {
		if len(c.Sites) == 0 {
			continue
		}
		merged := false
		for i := range base {
			if base[i].Name == c.Name {
				base[i].Sites = append(base[i].Sites, c.Sites...)
				merged = true
				break
			}
		}
		if !merged {
			base = append(base, c)
		}
	}
	return base
}

func newCategory(name string) domain.Category {
	return domain.Category{
		Name:  strings.TrimSpace(name),
		Sites: []domain.Site{},
		Color: domain.DefaultCategoryColor,
	}
}

func toSite(name, href, icon string) (domain.Site, bool) {
	site := domain.Site{
		Name: strings.TrimSpace(name),
		URL:  strings.TrimSpace(href),
		Icon: resolveIcon(icon),
	}
	if domain.ValidateSite(site) != nil {
		return domain.Site{}, false
	}
	return site, true
}

// resolveIcon maps a Homepage icon reference to an icon class or image URL.
//
//	""                   -> fallback class
//	"https://..."        -> unchanged
//	"adguard-home.svg"   -> dashboard-icons CDN
//	"mdi-home", "si-git" -> unchanged (icon-font class)
func resolveIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	switch {
	case icon == "":
		return fallbackIcon
	case domain.IsAbsoluteURL(icon):
		return icon
	}

	switch ext := strings.TrimPrefix(path.Ext(icon), "."); ext {
	case "svg", "png", "webp":
		return dashboardIconsBase + "/" + ext + "/" + icon
	}
	return icon
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
