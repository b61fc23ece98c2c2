package theme

import "testing"

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th == nil {
		t.Fatal("Default() returned nil")
	}
	if th.Name != "default" {
		t.Errorf("Name = %q, want %q", th.Name, "default")
	}
}

func TestGetKnownThemes(t *testing.T) {
	for _, name := range Names {
		th := Get(name)
		if th == nil {
			t.Errorf("Get(%q) = nil", name)
		}
		if th.Name != name {
			t.Errorf("Get(%q).Name = %q", name, th.Name)
		}
	}
}

func TestGetUnknownTheme(t *testing.T) {
	if Get("does-not-exist") != nil {
		t.Error("Get of unknown theme should return nil")
	}
}

func TestIndexOf(t *testing.T) {
	if got := IndexOf("default"); got != 0 {
		t.Errorf("IndexOf(default) = %d, want 0", got)
	}
	if got := IndexOf("tango-dark"); got != 1 {
		t.Errorf("IndexOf(tango-dark) = %d, want 1", got)
	}
	if got := IndexOf("nope"); got != 0 {
		t.Errorf("IndexOf(nope) = %d, want 0 (fallback)", got)
	}
}

func TestThemesRegistryComplete(t *testing.T) {
	if len(Themes) != len(Names) {
		t.Fatalf("Themes has %d entries, Names has %d", len(Themes), len(Names))
	}
	for _, name := range Names {
		if _, ok := Themes[name]; !ok {
			t.Errorf("Themes missing entry for %q", name)
		}
	}
}
