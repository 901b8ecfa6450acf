package sprite

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/devmabbott/Invaders/internal/core"
)

//go:embed sheet.yaml
var defaultSheet []byte

// Info contains metadata about a registered sprite.
type Info struct {
	Name   string
	Width  int
	Height int
	Color  core.Color
}

// Registry owns every sprite for the lifetime of the process.
// It is populated once by Load and is safe to share without locking afterwards.
type Registry struct {
	sprites map[string]*Sprite
}

// sheetFile is the YAML layout of a sprite sheet.
type sheetFile struct {
	Sprites []sheetEntry `yaml:"sprites"`
}

type sheetEntry struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Load parses a YAML sprite sheet into a new registry.
func Load(data []byte) (*Registry, error) {
	var sheet sheetFile
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("sprite: parse sheet: %w", err)
	}

	r := &Registry{sprites: make(map[string]*Sprite, len(sheet.Sprites))}
	for _, e := range sheet.Sprites {
		if err := r.register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadDefault loads the sprite sheet embedded in the binary.
func LoadDefault() (*Registry, error) {
	return Load(defaultSheet)
}

func (r *Registry) register(e sheetEntry) error {
	if e.Name == "" {
		return errors.New("sprite: entry without a name")
	}
	if _, exists := r.sprites[e.Name]; exists {
		return fmt.Errorf("sprite: %q already registered", e.Name)
	}
	if len(e.Rows) == 0 {
		return fmt.Errorf("sprite: %q has no rows", e.Name)
	}
	color, ok := core.ParseColor(e.Color)
	if !ok {
		return fmt.Errorf("sprite: %q has unknown color %q", e.Name, e.Color)
	}

	r.sprites[e.Name] = New(e.Name, e.Rows, color)
	return nil
}

// Get returns the sprite registered under name.
// Returns an error if no such sprite exists.
func (r *Registry) Get(name string) (*Sprite, error) {
	s, ok := r.sprites[name]
	if !ok {
		return nil, fmt.Errorf("sprite: unknown sprite %q", name)
	}
	return s, nil
}

// Exists checks if a sprite with the given name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.sprites[name]
	return ok
}

// List returns information about all registered sprites, sorted by name.
func (r *Registry) List() []Info {
	result := make([]Info, 0, len(r.sprites))
	for name, s := range r.sprites {
		result = append(result, Info{
			Name:   name,
			Width:  s.Width(),
			Height: s.Height(),
			Color:  s.Color(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
