package binding_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/remap/internal/input/binding"
	"github.com/dshills/remap/internal/input/code"
)

const jsonBindings = `{
  "name": "default",
  "bindings": [
    {"code": "w", "action": "move.up"},
    {"code": "Up", "action": "move.up"},
    {"code": "C-s", "action": "game.save", "description": "quick save"}
  ]
}`

const tomlBindings = `name = "default"

[[bindings]]
code = "w"
action = "move.up"

[[bindings]]
code = "MouseLeft"
action = "game.attack"
`

const yamlBindings = `name: default
bindings:
  - code: w
    action: move.up
  - code: Escape
    action: menu.toggle
`

func TestLoadBytesJSON(t *testing.T) {
	loader := binding.NewLoader()

	entries, err := loader.LoadBytes([]byte(jsonBindings), binding.FormatJSON)
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(entries))
	}
	if entries[code.MustParse("C-s")] != "game.save" {
		t.Errorf("C-s binding missing: %v", entries)
	}
}

func TestLoadBytesTOML(t *testing.T) {
	loader := binding.NewLoader()

	entries, err := loader.LoadBytes([]byte(tomlBindings), binding.FormatTOML)
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}

	if entries[code.MustParse("MouseLeft")] != "game.attack" {
		t.Errorf("MouseLeft binding missing: %v", entries)
	}
}

func TestLoadBytesYAML(t *testing.T) {
	loader := binding.NewLoader()

	entries, err := loader.LoadBytes([]byte(yamlBindings), binding.FormatYAML)
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}

	if entries[code.MustParse("Escape")] != "menu.toggle" {
		t.Errorf("Escape binding missing: %v", entries)
	}
}

func TestLoadBytesInvalidCode(t *testing.T) {
	loader := binding.NewLoader()

	_, err := loader.LoadBytes([]byte(`{"bindings": [{"code": "NotAKey", "action": "move.up"}]}`), binding.FormatJSON)
	if !errors.Is(err, binding.ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}

func TestLoadBytesEmptyAction(t *testing.T) {
	loader := binding.NewLoader()

	_, err := loader.LoadBytes([]byte(`{"bindings": [{"code": "w", "action": ""}]}`), binding.FormatJSON)
	if !errors.Is(err, binding.ErrEmptyAction) {
		t.Errorf("expected ErrEmptyAction, got %v", err)
	}
}

func TestLoadReader(t *testing.T) {
	loader := binding.NewLoader()

	entries, err := loader.LoadReader(strings.NewReader(jsonBindings), binding.FormatJSON)
	if err != nil {
		t.Fatalf("LoadReader error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 bindings, got %d", len(entries))
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want binding.Format
	}{
		{"bindings.json", binding.FormatJSON},
		{"bindings.toml", binding.FormatTOML},
		{"bindings.yaml", binding.FormatYAML},
		{"bindings.yml", binding.FormatYAML},
		{"bindings.YAML", binding.FormatYAML},
		{"bindings.ini", binding.FormatUnknown},
		{"bindings", binding.FormatUnknown},
	}

	for _, tt := range tests {
		if got := binding.FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	if err := os.WriteFile(path, []byte(jsonBindings), 0644); err != nil {
		t.Fatal(err)
	}

	loader := binding.NewLoader()
	entries, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 bindings, got %d", len(entries))
	}
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	loader := binding.NewLoader()

	_, err := loader.LoadFile("bindings.ini")
	if !errors.Is(err, binding.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadInto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	if err := os.WriteFile(path, []byte(jsonBindings), 0644); err != nil {
		t.Fatal(err)
	}

	table := binding.NewTable()
	_ = table.BindSpec("q", "app.quit")

	loader := binding.NewLoader()
	if err := loader.LoadInto(path, table); err != nil {
		t.Fatalf("LoadInto error: %v", err)
	}

	if _, ok := table.Resolve(code.MustParse("q")); ok {
		t.Error("old binding survived LoadInto")
	}
	if name, _ := table.Resolve(code.MustParse("w")); name != "move.up" {
		t.Error("loaded binding missing")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.json")

	table := binding.NewTable()
	_ = table.BindSpec("w", "move.up")
	_ = table.BindSpec("C-s", "game.save")

	if err := binding.SaveFile(path, table); err != nil {
		t.Fatalf("SaveFile error: %v", err)
	}

	loaded := binding.NewTable()
	if err := binding.NewLoader().LoadInto(path, loaded); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if loaded.Len() != table.Len() {
		t.Errorf("round trip lost bindings: %d != %d", loaded.Len(), table.Len())
	}
	if name, _ := loaded.Resolve(code.MustParse("C-s")); name != "game.save" {
		t.Error("C-s binding lost in round trip")
	}
}
