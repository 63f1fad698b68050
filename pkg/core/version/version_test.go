package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Foundation", Foundation},
		{"Casex", Casex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestToolVersion(t *testing.T) {
	tests := []struct {
		tool     string
		expected string
	}{
		{"casex", Casex},
		{"unknown", Foundation},
		{"", Foundation},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			if result := ToolVersion(tt.tool); result != tt.expected {
				t.Errorf("ToolVersion(%q) = %q, want %q", tt.tool, result, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info("casex")
	if !strings.HasPrefix(info, "casex v"+Casex+"\n") {
		t.Errorf("Info() = %q", info)
	}
	for _, field := range []string{"Git Commit:", "Build Date:", "Go Version:", "OS/Arch:"} {
		if !strings.Contains(info, field) {
			t.Errorf("Info() missing %q", field)
		}
	}
}
