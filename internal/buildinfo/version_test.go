package buildinfo

import "testing"

func TestTemplate(t *testing.T) {
	if got := Template(); got != "{{.Version}}\n" {
		t.Errorf("Template() = %q", got)
	}
}

func TestDefaultVersionIsSemver(t *testing.T) {
	if Version == "" {
		t.Fatal("Version is empty")
	}
	if Version[0] == 'v' {
		t.Errorf("Version = %q; want no leading v", Version)
	}
}
