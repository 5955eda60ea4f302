package redis

import (
	"reflect"
	"testing"

	"github.com/dart-sh/dart/internal/domain"
)

func TestSnapshotWireFormat(t *testing.T) {
	entries := []domain.Entry{
		{
			Name:        "notes",
			Target:      domain.Target{Kind: domain.KindLocation, Value: "/home/user/notes.md"},
			Tags:        []string{"text"},
			Description: "personal notes",
		},
		{
			Name:    "Search: %s",
			Target:  domain.Target{Kind: domain.KindURL, Value: "https://example.com/?q=%s"},
			Keyword: "s",
			Escape:  true,
		},
		{
			Name:   "run backup",
			Target: domain.Target{Kind: domain.KindSystem, Value: "backup.sh"},
			Icon:   "icons/backup.png",
		},
	}
	settings := domain.Settings{MaxResults: 3}

	data, err := marshalSnapshot(domain.NewDatabase(entries), settings)
	if err != nil {
		t.Fatalf("marshalSnapshot() error: %v", err)
	}

	db, gotSettings, err := unmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("unmarshalSnapshot() error: %v", err)
	}

	// Settings round-trip with the entries, so a restart serving the
	// persisted snapshot keeps the file's result bound.
	if gotSettings != settings {
		t.Errorf("settings = %+v, want %+v", gotSettings, settings)
	}

	if !reflect.DeepEqual(db.Entries(), entries) {
		t.Errorf("entries = %+v, want %+v", db.Entries(), entries)
	}
	for i := range entries {
		if db.Get(i).SourceIndex != i {
			t.Errorf("entry %d has SourceIndex %d", i, db.Get(i).SourceIndex)
		}
	}
}

func TestParseKindFallback(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TargetKind
	}{
		{"location", domain.KindLocation},
		{"system", domain.KindSystem},
		{"url", domain.KindURL},
		{"garbage", domain.KindLocation},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseKind(tt.in); got != tt.want {
				t.Errorf("parseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
