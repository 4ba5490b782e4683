package catalog

import (
	"fmt"
	"sort"
)

// Addon is a third-party library commonly used next to LWJGL.
// Its coordinate is passed through as-is.
type Addon struct {
	Name       string
	Coordinate string // group:artifact:version
}

// UnknownAddonError is returned when an addon name is not defined.
type UnknownAddonError struct {
	Name string
}

func (e *UnknownAddonError) Error() string {
	return fmt.Sprintf("unknown addon %q", e.Name)
}

var addons = map[string]string{
	"joml":                "org.joml:joml:1.10.5",
	"joml-primitives":     "org.joml:joml-primitives:1.10.0",
	"lwjgl3-awt":          "org.lwjglx:lwjgl3-awt:0.1.8",
	"lwjglx-debug":        "org.lwjglx:debug:1.0.0",
	"steamworks4j":        "com.code-disaster.steamworks4j:steamworks4j:1.9.0",
	"steamworks4j-server": "com.code-disaster.steamworks4j:steamworks4j-server:1.9.0",
}

// LookupAddon returns the addon with the given name.
func LookupAddon(name string) (Addon, error) {
	c, ok := addons[name]
	if !ok {
		return Addon{}, &UnknownAddonError{Name: name}
	}
	return Addon{Name: name, Coordinate: c}, nil
}

// Addons returns every addon sorted by name.
func Addons() []Addon {
	out := make([]Addon, 0, len(addons))
	for name, c := range addons {
		out = append(out, Addon{Name: name, Coordinate: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
