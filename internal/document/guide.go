package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Field names a single-value form field of the guide.
type Field string

const (
	BrandColor Field = "brand_color"
	BrandName  Field = "brand_name"
	ClientName Field = "client_name"
	Audience   Field = "audience"
	Goal       Field = "goal"
)

// Fields lists every form field in display order.
var Fields = []Field{BrandColor, BrandName, ClientName, Audience, Goal}

// Section is one tab of the guide. Display mirrors the title shown in the
// rendered preview and is left empty until the guide is generated.
type Section struct {
	Title   string `yaml:"title"`
	Display string `yaml:"display,omitempty"`
}

// Guide is the draft being authored: the step it is at, the pasted content,
// its sections and form fields.
type Guide struct {
	Step       int              `yaml:"step"`
	RawContent string           `yaml:"content,omitempty"`
	Sections   []Section        `yaml:"sections,omitempty"`
	Values     map[Field]string `yaml:"fields,omitempty"`

	path string
}

// NewGuide returns an empty draft at the first step that saves to path.
func NewGuide(path string) *Guide {
	return &Guide{Step: 1, Values: map[Field]string{}, path: path}
}

// LoadGuide reads the draft at path. A missing file yields an empty draft.
func LoadGuide(path string) (*Guide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewGuide(path), nil
		}
		return nil, err
	}

	g := NewGuide(path)
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("parsing guide %s: %w", path, err)
	}
	if g.Values == nil {
		g.Values = map[Field]string{}
	}
	if g.Step < 1 || g.Step > 4 {
		g.Step = 1
	}
	return g, nil
}

// Path returns where the draft is saved.
func (g *Guide) Path() string {
	return g.path
}

// Save writes the draft back to its path.
func (g *Guide) Save() error {
	if g.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(g)
	if err != nil {
		return err
	}
	return os.WriteFile(g.path, data, 0644)
}

// Content returns the pasted content.
func (g *Guide) Content() string {
	return g.RawContent
}

// SectionTitles returns the section titles in order.
func (g *Guide) SectionTitles() []string {
	out := make([]string, len(g.Sections))
	for i, s := range g.Sections {
		out[i] = s.Title
	}
	return out
}

// SetSectionTitle renames section i and keeps its display title in sync.
func (g *Guide) SetSectionTitle(i int, title string) {
	if i < 0 || i >= len(g.Sections) {
		return
	}
	g.Sections[i].Title = title
	if g.Sections[i].Display != "" {
		g.Sections[i].Display = title
	}
}

// AddSection appends a section.
func (g *Guide) AddSection(title string) {
	g.Sections = append(g.Sections, Section{Title: title})
}

// RemoveSection deletes section i.
func (g *Guide) RemoveSection(i int) bool {
	if i < 0 || i >= len(g.Sections) {
		return false
	}
	g.Sections = append(g.Sections[:i], g.Sections[i+1:]...)
	return true
}

// Field returns the value of f, empty when unset.
func (g *Guide) Field(f Field) string {
	return g.Values[f]
}

// SetField sets f to v.
func (g *Guide) SetField(f Field, v string) {
	if g.Values == nil {
		g.Values = map[Field]string{}
	}
	g.Values[f] = v
}

// ParseField maps a user-typed name ("audience", "brand-color", "color") to
// a Field.
func ParseField(name string) (Field, bool) {
	switch name {
	case "brand_color", "brand-color", "color":
		return BrandColor, true
	case "brand_name", "brand-name", "brand":
		return BrandName, true
	case "client_name", "client-name", "client":
		return ClientName, true
	case "audience":
		return Audience, true
	case "goal":
		return Goal, true
	}
	return "", false
}
