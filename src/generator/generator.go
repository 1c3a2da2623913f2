package generator

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/logger"
	"github.com/pboueri/supervisor/src/util"
)

// Generator renders the placeholder body of one target kind.
type Generator interface {
	Kind() src.TargetKind
	Render(complexity src.Complexity) (string, error)
}

// Registry maps target kinds to their generators.
type Registry struct {
	generators map[src.TargetKind]Generator
}

func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[src.TargetKind]Generator),
	}
}

// DefaultRegistry returns a registry holding the four built-in generators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewBuildGradleGenerator())
	r.Register(NewManifestGenerator())
	r.Register(NewSettingsGradleGenerator())
	r.Register(NewGradlePropertiesGenerator())
	return r
}

func (r *Registry) Register(g Generator) {
	r.generators[g.Kind()] = g
}

func (r *Registry) Get(kind src.TargetKind) (Generator, error) {
	g, exists := r.generators[kind]
	if !exists {
		return nil, fmt.Errorf("no generator registered for %s", kind)
	}
	return g, nil
}

// Kinds returns the registered kinds in supervision order.
func (r *Registry) Kinds() []src.TargetKind {
	kinds := make([]src.TargetKind, 0, len(r.generators))
	for _, k := range src.TargetKinds {
		if _, ok := r.generators[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Generate renders g and writes the result to path, overwriting whatever is
// there. root is the project root; it must exist.
func Generate(g Generator, root, path string, complexity src.Complexity, out io.Writer) error {
	name := g.Kind().FileName()
	fmt.Fprintf(out, "Generando %s...\n", name)

	body, err := g.Render(complexity)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	logger.Debug("Writing %d bytes to %s", len(body), path)
	if err := util.WriteTextUnder(root, path, body); err != nil {
		return fmt.Errorf("failed to generate %s: %w", name, err)
	}

	fmt.Fprintf(out, "%s generado.\n", name)
	return nil
}

func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
