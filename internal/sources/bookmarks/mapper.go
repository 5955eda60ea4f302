package bookmarks

import (
	"github.com/dart-sh/dart/internal/domain"
)

// Mapper converts bookmark props to database entries.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapEntries converts a BookmarksConfig to url entries. Bookmarks with no
// name or URL are skipped, not fatal — the file is an optional convenience
// source, unlike the strict TOML entry file. The caller appends the result
// after the TOML entries, so bookmarks take the later source positions.
func (m *Mapper) MapEntries(config BookmarksConfig) []domain.Entry {
	out := make([]domain.Entry, 0, len(config))
	for _, props := range config {
		if props.Name == "" || props.URL == "" {
			continue
		}
		out = append(out, domain.Entry{
			Name:        props.Name,
			Target:      domain.Target{Kind: domain.KindURL, Value: props.URL},
			Keyword:     props.Keyword,
			Escape:      true,
			Tags:        props.Tags,
			Description: props.Description,
		})
	}
	return out
}
