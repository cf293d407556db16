package template

// Template is a named boilerplate: a flat map of relative file path to
// file content, written out verbatim when the template is applied.
type Template struct {
	Name        string
	Description string
	Files       map[string]string
}

type TemplateInfo struct {
	Name        string
	Description string
	Files       []string
}

type TemplateEngine interface {
	LoadTemplate(name string) (*Template, error)
	ApplyTemplate(name, targetDir string) error
	ListTemplates() []TemplateInfo
}
