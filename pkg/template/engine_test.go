package template

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyTemplate_BuiltIn(t *testing.T) {
	engine := NewEngine()
	targetDir := filepath.Join(t.TempDir(), "demo")

	if err := engine.ApplyTemplate("web-backend", targetDir); err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}

	tmpl, err := engine.LoadTemplate("web-backend")
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}

	for path, want := range tmpl.Files {
		got, err := os.ReadFile(filepath.Join(targetDir, path))
		if err != nil {
			t.Fatalf("expected file %s missing: %v", path, err)
		}
		if string(got) != want {
			t.Errorf("file %s does not match template content", path)
		}
	}
}

func TestApplyTemplate_OverwritesExisting(t *testing.T) {
	engine := NewEngine()
	targetDir := filepath.Join(t.TempDir(), "demo")

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(targetDir, "index.js")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := engine.ApplyTemplate("web-backend", targetDir); err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}

	got, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) == "stale" {
		t.Error("existing file was not overwritten")
	}
}

func TestApplyTemplate_Unknown(t *testing.T) {
	engine := NewEngine()

	if err := engine.ApplyTemplate("nope", t.TempDir()); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestLoadTemplate_FromDisk(t *testing.T) {
	templatesDir := t.TempDir()
	customDir := filepath.Join(templatesDir, "custom")

	files := map[string]string{
		"README.md":     "# Custom Starter\n",
		"package.json":  `{"name": "custom", "license": "MIT"}`,
		"src/server.js": "console.log('hi');\n",
	}
	for path, content := range files {
		full := filepath.Join(customDir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	engine := NewFileSystemEngine(templatesDir)
	tmpl, err := engine.LoadTemplate("custom")
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}

	if tmpl.Description != "Custom Starter" {
		t.Errorf("expected description from README, got %q", tmpl.Description)
	}

	for path, want := range files {
		if tmpl.Files[path] != want {
			t.Errorf("file %s content mismatch", path)
		}
	}
}

func TestListTemplates(t *testing.T) {
	templatesDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(templatesDir, "mine"), 0755); err != nil {
		t.Fatal(err)
	}

	engine := NewFileSystemEngine(templatesDir)
	infos := engine.ListTemplates()

	names := make(map[string]bool)
	for _, info := range infos {
		names[info.Name] = true
	}

	if !names["web-backend"] {
		t.Error("built-in web-backend template not listed")
	}
	if !names["mine"] {
		t.Error("custom template directory not listed")
	}
}
