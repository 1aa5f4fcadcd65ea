package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	if got := Template(); !strings.Contains(got, "version v1.2.3") {
		t.Errorf("Template() = %q, want version v1.2.3", got)
	}
	if got := String(); !strings.HasPrefix(got, "version: v1.2.3\n") {
		t.Errorf("String() = %q", got)
	}
	if got := CacheScope(); got != "v1.2.3:" {
		t.Errorf("CacheScope() = %q, want %q", got, "v1.2.3:")
	}
}
