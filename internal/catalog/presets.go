package catalog

import (
	"fmt"
	"sort"
)

// Preset is a named bundle of modules.
type Preset struct {
	Name    string
	Modules []string
}

// UnknownPresetError is returned when a preset name is not defined.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q", e.Name)
}

var presets = map[string][]string{
	"none":            {},
	"gettingStarted":  {Core, "assimp", "bgfx", "glfw", "nanovg", "nuklear", "openal", "opengl", "par", "stb", "vulkan"},
	"minimalOpenGL":   {Core, "assimp", "glfw", "openal", "opengl", "stb"},
	"minimalOpenGLES": {Core, "assimp", "egl", "glfw", "openal", "opengles", "stb"},
	"minimalVulkan":   {Core, "assimp", "glfw", "openal", "stb", "vulkan"},
}

// Everything is the preset containing the whole catalog.
const Everything = "everything"

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	if name == Everything {
		names := make([]string, len(modules))
		for i, m := range modules {
			names[i] = m.Name
		}
		return Preset{Name: name, Modules: names}, nil
	}
	mods, ok := presets[name]
	if !ok {
		return Preset{}, &UnknownPresetError{Name: name}
	}
	out := make([]string, len(mods))
	copy(out, mods)
	return Preset{Name: name, Modules: out}, nil
}

// Presets returns every preset sorted by name.
func Presets() []Preset {
	names := make([]string, 0, len(presets)+1)
	for name := range presets {
		names = append(names, name)
	}
	names = append(names, Everything)
	sort.Strings(names)

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		p, _ := LookupPreset(name)
		out = append(out, p)
	}
	return out
}
