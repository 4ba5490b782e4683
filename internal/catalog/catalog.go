// Package catalog holds the static LWJGL module, preset and addon tables.
package catalog

import (
	"fmt"

	"github.com/LWJGL/lwjgl3-gradle/internal/version"
)

// Core is the module every resolution includes.
const Core = "core"

// Module is one LWJGL binding library.
type Module struct {
	Name   string
	Native bool            // ships a natives-<platform> classifier jar
	Since  version.Version // first release containing the module
}

// Artifact returns the Maven artifact id of the module.
func (m Module) Artifact() string {
	if m.Name == Core {
		return "lwjgl"
	}
	return "lwjgl-" + m.Name
}

// AvailableIn reports whether v is new enough to contain the module.
func (m Module) AvailableIn(v version.Version) bool {
	return v.AtLeast(m.Since)
}

// UnknownModuleError is returned when a module name is not in the catalog.
type UnknownModuleError struct {
	Name string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Name)
}

func mod(name string, native bool, since string) Module {
	return Module{Name: name, Native: native, Since: version.MustParse(since)}
}

var modules = []Module{
	mod(Core, true, "3.0.0"),

	mod("assimp", true, "3.1.1"),
	mod("bgfx", true, "3.1.1"),
	mod("bullet", true, "3.2.1"),
	mod("cuda", false, "3.2.1"),
	mod("driftfx", true, "3.2.1"),
	mod("egl", false, "3.1.0"),
	mod("glfw", true, "3.0.0"),
	mod("jawt", false, "3.1.0"),
	mod("jemalloc", true, "3.0.0"),
	mod("libdivide", true, "3.2.1"),
	mod("llvm", true, "3.2.1"),
	mod("lmdb", true, "3.1.1"),
	mod("lz4", true, "3.1.4"),
	mod("meow", true, "3.2.1"),
	mod("meshoptimizer", true, "3.2.3"),
	mod("nanovg", true, "3.1.0"),
	mod("nfd", true, "3.1.1"),
	mod("nuklear", true, "3.1.0"),
	mod("odbc", false, "3.2.0"),
	mod("openal", true, "3.0.0"),
	mod("opencl", false, "3.0.0"),
	mod("opengl", true, "3.0.0"),
	mod("opengles", true, "3.0.0"),
	mod("openvr", true, "3.1.2"),
	mod("opus", true, "3.2.1"),
	mod("par", true, "3.1.0"),
	mod("remotery", true, "3.1.4"),
	mod("rpmalloc", true, "3.1.4"),
	mod("shaderc", true, "3.2.1"),
	mod("spvc", true, "3.2.3"),
	mod("sse", true, "3.1.0"),
	mod("stb", true, "3.1.0"),
	mod("tinyexr", true, "3.1.2"),
	mod("tinyfd", true, "3.1.1"),
	mod("tootle", true, "3.2.1"),
	mod("vma", true, "3.2.0"),
	mod("vulkan", false, "3.0.0"),
	mod("xxhash", true, "3.1.1"),
	mod("yoga", true, "3.1.2"),
	mod("zstd", true, "3.1.4"),
}

var byName = func() map[string]Module {
	m := make(map[string]Module, len(modules))
	for _, mod := range modules {
		m[mod.Name] = mod
	}
	return m
}()

// Modules returns every module in catalog order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// Lookup finds a module by name.
func Lookup(name string) (Module, error) {
	m, ok := byName[name]
	if !ok {
		return Module{}, &UnknownModuleError{Name: name}
	}
	return m, nil
}

// LookupAll resolves names in order, failing on the first unknown name.
func LookupAll(names []string) ([]Module, error) {
	out := make([]Module, 0, len(names))
	for _, name := range names {
		m, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
