package version

import (
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"plain", "1.2.3", "", "", "kremap 1.2.3"},
		{"short commit", "1.2.3", "abc123", "", "kremap 1.2.3 (abc123)"},
		{"long commit", "0.1.0-dev", "1234567890abcdef1234", "2026-01-15", "kremap 0.1.0-dev (1234567890ab) built 2026-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, tt.commit, tt.date)
			if got := Banner(false); got != tt.want {
				t.Errorf("Banner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	withVersion(t, "2.0.1-rc.1", "", "")
	if got := Colored(); got != "2.0.1-rc.1" {
		t.Errorf("Colored() without colour = %q", got)
	}
	withVersion(t, "nightly", "", "")
	if got := Colored(); got != "nightly" {
		t.Errorf("Colored() = %q", got)
	}
}
