package homepage

// ServicesConfig is the top-level structure of Homepage's services.yaml.
// Group and service names are YAML keys, hence the nested maps:
//
//	- Group:
//	    - Service:
//	        href: ...
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps are the service fields linkhub reads. Widgets, pings and
// monitors are Homepage-only and ignored.
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// BookmarksConfig is the root structure of bookmarks.yaml:
//
//	- Group:
//	    - Bookmark:
//	        - abbr: XX
//	          href: ...
type BookmarksConfig []map[string][]map[string][]BookmarkEntry

// BookmarkEntry holds the properties of one bookmark. Homepage wraps it in a
// single-element list.
type BookmarkEntry struct {
	Icon string `yaml:"icon"`
	Abbr string `yaml:"abbr"`
	Href string `yaml:"href"`
}
