package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stencil/pkg/config"
	"stencil/pkg/manifest"
	"stencil/pkg/prompt"
	"stencil/pkg/run"
	"stencil/pkg/telemetry"
	"stencil/pkg/template"
)

// Licenses the generator will write into a manifest. The first entry is
// the prompt default.
var Licenses = []string{"ISC", "MIT", "Apache-2.0", "GPL-3.0", "BSD-3-Clause", "UNLICENSED"}

const ManifestFile = "package.json"

// Manager drives the generator pipeline. Every step runs against the
// explicit target directory; the process working directory is never
// changed.
type Manager struct {
	engine    template.TemplateEngine
	asker     prompt.Asker
	runner    run.Runner
	cfg       *config.Config
	collector *telemetry.Collector
}

type Options struct {
	// Template names the boilerplate to copy. Empty means the
	// configured default.
	Template string
	// SkipInstall suppresses the dependency-install prompt entirely.
	SkipInstall bool
	// WorkDir is the directory the project is created under. Empty
	// means the current working directory.
	WorkDir string
}

func NewManager(engine template.TemplateEngine, asker prompt.Asker, runner run.Runner, cfg *config.Config) *Manager {
	return &Manager{engine: engine, asker: asker, runner: runner, cfg: cfg}
}

func NewManagerWithCollector(engine template.TemplateEngine, asker prompt.Asker, runner run.Runner, cfg *config.Config, collector *telemetry.Collector) *Manager {
	return &Manager{engine: engine, asker: asker, runner: runner, cfg: cfg, collector: collector}
}

func (m *Manager) validateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	// "." and ".." would resolve outside the work directory.
	if name == "." || name == ".." {
		return fmt.Errorf("project name %q is not allowed", name)
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.') {
			return fmt.Errorf("project name contains invalid characters: only alphanumeric, hyphens, underscores, and dots allowed")
		}
	}

	return nil
}

// Create runs the whole pipeline for one project. The returned error is
// fatal; a declined overwrite is not an error and install/VCS failures
// are reported but swallowed.
func (m *Manager) Create(name string, opts Options) error {
	started := time.Now()
	templateName := opts.Template
	if templateName == "" {
		templateName = m.cfg.Defaults.Template
	}

	err := m.create(name, templateName, opts)
	m.record(name, templateName, time.Since(started), err)
	return err
}

func (m *Manager) create(name, templateName string, opts Options) error {
	if err := m.validateName(name); err != nil {
		return err
	}

	baseDir := opts.WorkDir
	if baseDir == "" {
		var err error
		baseDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	target := filepath.Join(baseDir, name)

	if _, err := os.Stat(target); err == nil {
		overwrite, err := m.asker.Confirm(fmt.Sprintf("Directory '%s' already exists. Overwrite?", name), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !overwrite {
			fmt.Printf("Aborted. Directory '%s' was left untouched.\n", name)
			return nil
		}

		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove existing directory: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check target directory: %w", err)
	}

	fmt.Printf("🚀 Creating project '%s' from template '%s'...\n", name, templateName)
	if err := m.engine.ApplyTemplate(templateName, target); err != nil {
		return fmt.Errorf("failed to copy boilerplate: %w", err)
	}

	fields, err := m.collectFields(name)
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(target, ManifestFile)
	mf, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("boilerplate has no usable manifest: %w", err)
	}
	mf.Merge(fields)
	if err := mf.Save(manifestPath); err != nil {
		return err
	}

	installed := false
	if !opts.SkipInstall {
		yes, err := m.asker.Confirm("Install dependencies now?", true)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if yes {
			fmt.Println("📦 Installing dependencies...")
			if err := m.runner.Run("npm", []string{"install"}, target); err != nil {
				fmt.Printf("⚠️  Warning: dependency install failed: %v\n", err)
			} else {
				installed = true
			}
		}
	}

	if err := m.runner.Run("git", []string{"init"}, target); err != nil {
		fmt.Printf("⚠️  Warning: failed to initialize git repository: %v\n", err)
	}

	m.printSummary(name, target, installed)
	return nil
}

func (m *Manager) collectFields(name string) (manifest.Fields, error) {
	var fields manifest.Fields
	var err error

	fields.Name, err = m.asker.Input("Package name:", name, m.validateName)
	if err != nil {
		return fields, err
	}

	fields.Description, err = m.asker.Input("Description:", "A Node.js web backend", nil)
	if err != nil {
		return fields, err
	}

	fields.Version, err = m.asker.Input("Version:", m.cfg.Defaults.Version, nil)
	if err != nil {
		return fields, err
	}

	fields.Author, err = m.asker.Input("Author:", m.cfg.Defaults.Author, nil)
	if err != nil {
		return fields, err
	}

	fields.License, err = m.asker.Select("License:", Licenses, m.defaultLicense())
	if err != nil {
		return fields, err
	}

	fields.Main, err = m.asker.Input("Entry point:", "index.js", nil)
	if err != nil {
		return fields, err
	}

	return fields, nil
}

func (m *Manager) defaultLicense() string {
	for _, l := range Licenses {
		if l == m.cfg.Defaults.License {
			return l
		}
	}
	return Licenses[0]
}

func (m *Manager) printSummary(name, target string, installed bool) {
	fmt.Printf("\n✅ Project '%s' created successfully!\n", name)
	fmt.Printf("   Path: %s\n", target)
	fmt.Println("\nNext steps:")
	fmt.Printf("  cd %s\n", name)
	if !installed {
		fmt.Println("  npm install")
	}
	fmt.Println("  cp .env.example .env")
	fmt.Println("  npm run dev")
}

func (m *Manager) record(name, templateName string, duration time.Duration, runErr error) {
	if m.collector == nil {
		return
	}
	// Telemetry must never fail a run.
	m.collector.RecordRun("create", name, templateName, duration, runErr)
}
