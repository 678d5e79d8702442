package scene

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed demos/*.toml
var demoFS embed.FS

// Demos returns the names of the built-in layouts.
func Demos() []string {
	entries, err := demoFS.ReadDir("demos")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Demo builds the built-in layout with the given name.
func Demo(name string) (*Scene, error) {
	data, err := demoFS.ReadFile("demos/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("unknown demo %q (have %s)", name, strings.Join(Demos(), ", "))
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("demo %s: %w", name, err)
	}
	return s, nil
}
