package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func tempPrefs(t *testing.T) *Prefs {
	t.Helper()
	return &Prefs{
		values: make(map[string]interface{}),
		path:   filepath.Join(t.TempDir(), "nested", prefsFile),
	}
}

func TestFallbacks(t *testing.T) {
	p := tempPrefs(t)

	if got := p.Float(KeyZoom, 1.5); got != 1.5 {
		t.Errorf("Float fallback = %v", got)
	}
	if got := p.String(KeyTool, "pencil"); got != "pencil" {
		t.Errorf("String fallback = %q", got)
	}
	if got := p.Bool(KeyFullscreen, true); got != true {
		t.Errorf("Bool fallback = %v", got)
	}
}

func TestSetAndGet(t *testing.T) {
	p := tempPrefs(t)

	p.SetFloat(KeyPencilWidth, 7)
	p.SetString(KeyTool, "eraser")
	p.SetBool(KeyFullscreen, true)

	if got := p.Float(KeyPencilWidth, 0); got != 7 {
		t.Errorf("Float = %v, want 7", got)
	}
	if got := p.String(KeyTool, ""); got != "eraser" {
		t.Errorf("String = %q, want eraser", got)
	}
	if !p.Bool(KeyFullscreen, false) {
		t.Error("Bool = false, want true")
	}

	// Wrong-type values fall back.
	if got := p.Float(KeyTool, 3); got != 3 {
		t.Errorf("Float on string value = %v, want fallback", got)
	}
}

func TestSaveCreatesDirAndRoundTrips(t *testing.T) {
	p := tempPrefs(t)
	p.SetFloat(KeyZoom, 2.5)
	p.SetString(KeyPencilColor, "#ff0000")

	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	values := make(map[string]interface{})
	if err := json.Unmarshal(data, &values); err != nil {
		t.Fatalf("saved file is not JSON: %v", err)
	}
	if values[KeyZoom] != 2.5 {
		t.Errorf("zoom = %v, want 2.5", values[KeyZoom])
	}
	if values[KeyPencilColor] != "#ff0000" {
		t.Errorf("color = %v", values[KeyPencilColor])
	}
}
