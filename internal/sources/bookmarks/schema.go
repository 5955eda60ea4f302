package bookmarks

// BookmarksConfig is the top-level structure of the optional bookmark file:
// a flat YAML list of external URLs to merge into the entry database.
type BookmarksConfig []BookmarkProps

// BookmarkProps is one bookmark as written in YAML.
type BookmarkProps struct {
	Name        string   `yaml:"name"`
	URL         string   `yaml:"url"`
	Keyword     string   `yaml:"keyword,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Description string   `yaml:"description,omitempty"`
}
