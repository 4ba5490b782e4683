package resolver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/LWJGL/lwjgl3-gradle/internal/artifact"
	"github.com/LWJGL/lwjgl3-gradle/internal/catalog"
	"github.com/LWJGL/lwjgl3-gradle/internal/platform"
	"github.com/LWJGL/lwjgl3-gradle/internal/version"
)

func newResolver(t *testing.T, b *Builder) *Resolver {
	t.Helper()
	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return NewResolver(cfg, nil)
}

func linuxBuilder(v string) *Builder {
	return NewBuilder().Version(v).Host(platform.Linux, "amd64")
}

func artifacts(coords []artifact.Coordinate) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out
}

func TestResolve_VersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    []string
	}{
		{
			name:    "vma before introduction",
			version: "3.1.5",
			want: []string{
				"org.lwjgl:lwjgl:3.1.5",
				"org.lwjgl:lwjgl:3.1.5:natives-linux",
			},
		},
		{
			name:    "vma at introduction",
			version: "3.2.0",
			want: []string{
				"org.lwjgl:lwjgl:3.2.0",
				"org.lwjgl:lwjgl:3.2.0:natives-linux",
				"org.lwjgl:lwjgl-vma:3.2.0",
				"org.lwjgl:lwjgl-vma:3.2.0:natives-linux",
			},
		},
		{
			name:    "vma snapshot",
			version: "3.2.0-SNAPSHOT",
			want: []string{
				"org.lwjgl:lwjgl:3.2.0-SNAPSHOT",
				"org.lwjgl:lwjgl:3.2.0-SNAPSHOT:natives-linux",
				"org.lwjgl:lwjgl-vma:3.2.0-SNAPSHOT",
				"org.lwjgl:lwjgl-vma:3.2.0-SNAPSHOT:natives-linux",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(t, linuxBuilder(tt.version))
			coords, err := r.Resolve(Request{Modules: []string{"vma"}})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got := artifacts(coords); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_PresetNone(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))
	coords, err := r.Resolve(Request{Preset: "none"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"org.lwjgl:lwjgl:3.3.2", "org.lwjgl:lwjgl:3.3.2:natives-linux"}
	if got := artifacts(coords); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(none) = %v, want %v", got, want)
	}
}

func TestResolve_Scopes(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))

	coords, err := r.Resolve(Request{Modules: []string{"glfw"}})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range coords {
		want := artifact.ScopeCompile
		if c.Classifier != "" {
			want = artifact.ScopeRuntime
		}
		if c.Scope != want {
			t.Errorf("%s scope = %s, want %s", c, c.Scope, want)
		}
	}

	coords, err = r.Resolve(Request{Modules: []string{"glfw"}, Test: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range coords {
		want := artifact.ScopeTestCompile
		if c.Classifier != "" {
			want = artifact.ScopeTestRuntime
		}
		if c.Scope != want {
			t.Errorf("%s scope = %s, want %s", c, c.Scope, want)
		}
	}
}

func TestResolve_AllNatives(t *testing.T) {
	r := newResolver(t, NewBuilder().Version("3.3.2").AllNatives(true))
	coords, err := r.Resolve(Request{Modules: []string{"opengl"}})
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, c := range coords {
		if c.Artifact == "lwjgl-opengl" && c.Classifier != "" {
			got = append(got, c.Classifier)
		}
	}
	want := []string{
		"natives-linux-arm64", "natives-linux-arm32", "natives-linux",
		"natives-macos-arm64", "natives-macos",
		"natives-windows-arm64", "natives-windows", "natives-windows-x86",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("opengl natives = %v, want %v", got, want)
	}
	// core: 1 + 8, opengl: 1 + 8
	if len(coords) != 18 {
		t.Errorf("got %d coordinates, want 18", len(coords))
	}
}

func TestResolve_NonNative(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))
	coords, err := r.Resolve(Request{Modules: []string{"core", "vulkan"}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"org.lwjgl:lwjgl:3.3.2",
		"org.lwjgl:lwjgl:3.3.2:natives-linux",
		"org.lwjgl:lwjgl-vulkan:3.3.2",
	}
	if got := artifacts(coords); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolve_CoreOrderAndDedup(t *testing.T) {
	r := newResolver(t, NewBuilder().Version("3.3.2").Natives("natives-macos-arm64"))
	coords, err := r.Resolve(Request{Preset: "minimalVulkan", Modules: []string{"vulkan", "glfw", "vma"}})
	if err != nil {
		t.Fatal(err)
	}

	var order []string
	for _, c := range coords {
		if c.Classifier == "" {
			order = append(order, c.Artifact)
		} else if c.Classifier != "natives-macos-arm64" {
			t.Errorf("%s: classifier override ignored", c)
		}
	}
	want := []string{"lwjgl", "lwjgl-assimp", "lwjgl-glfw", "lwjgl-openal", "lwjgl-stb", "lwjgl-vulkan", "lwjgl-vma"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("primary order = %v, want %v", order, want)
	}
}

func TestResolve_CoreInsertedFirst(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))
	coords, err := r.Resolve(Request{Modules: []string{"stb"}})
	if err != nil {
		t.Fatal(err)
	}
	if coords[0].Artifact != "lwjgl" {
		t.Errorf("first coordinate = %s, want core", coords[0])
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := newResolver(t, NewBuilder().Version("3.3.2").AllNatives(true))
	req := Request{Preset: "gettingStarted", Addons: []string{"joml"}}

	first, err := r.Resolve(req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resolve(req)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Resolve() not idempotent")
	}
}

func TestResolve_Addons(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))
	coords, err := r.Resolve(Request{Preset: "none", Addons: []string{"joml"}, Test: true})
	if err != nil {
		t.Fatal(err)
	}
	last := coords[len(coords)-1]
	want := artifact.Coordinate{Group: "org.joml", Artifact: "joml", Version: "1.10.5", Scope: artifact.ScopeTestCompile}
	if last != want {
		t.Errorf("addon coordinate = %+v, want %+v", last, want)
	}
}

func TestResolve_Errors(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))

	t.Run("unknown module", func(t *testing.T) {
		coords, err := r.Resolve(Request{Modules: []string{"glfw", "glwf"}})
		var ume *catalog.UnknownModuleError
		if !errors.As(err, &ume) || ume.Name != "glwf" {
			t.Errorf("error = %v, want UnknownModuleError", err)
		}
		if coords != nil {
			t.Errorf("partial result returned: %v", coords)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := r.Resolve(Request{Preset: "maximalOpenGL"})
		var upe *catalog.UnknownPresetError
		if !errors.As(err, &upe) {
			t.Errorf("error = %v, want UnknownPresetError", err)
		}
	})

	t.Run("unknown addon", func(t *testing.T) {
		_, err := r.Resolve(Request{Addons: []string{"jbox2d"}})
		var uae *catalog.UnknownAddonError
		if !errors.As(err, &uae) {
			t.Errorf("error = %v, want UnknownAddonError", err)
		}
	})
}

func TestResolve_UnsupportedHost(t *testing.T) {
	cfg, err := NewBuilder().Version("3.3.2").Host(platform.OS("freebsd"), "amd64").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	r := NewResolver(cfg, nil)

	_, err = r.Resolve(Request{Modules: []string{"glfw"}})
	var upe *platform.UnsupportedPlatformError
	if !errors.As(err, &upe) {
		t.Fatalf("error = %v, want UnsupportedPlatformError", err)
	}

	// An override makes the host irrelevant.
	cfg, err = NewBuilder().Version("3.3.2").Host(platform.OS("freebsd"), "amd64").Natives("natives-linux").Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewResolver(cfg, nil).Resolve(Request{Modules: []string{"glfw"}}); err != nil {
		t.Errorf("Resolve() with override error = %v", err)
	}
}

func TestResolveAll(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))
	coords, err := r.ResolveAll([]Request{
		{Modules: []string{"opengl"}},
		{Modules: []string{"stb"}, Test: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 8 {
		t.Fatalf("got %d coordinates, want 8", len(coords))
	}
	if coords[4].Scope != artifact.ScopeTestCompile {
		t.Errorf("second request scope = %s", coords[4].Scope)
	}
}

func TestBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewBuilder().Host(platform.Windows, "amd64").Build()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Group() != DefaultGroup {
			t.Errorf("Group() = %q", cfg.Group())
		}
		if cfg.Version().String() != version.Default {
			t.Errorf("Version() = %q", cfg.Version())
		}
		c, err := cfg.Classifier()
		if err != nil || c != "natives-windows" {
			t.Errorf("Classifier() = %q, %v", c, err)
		}
	})

	t.Run("malformed version", func(t *testing.T) {
		_, err := NewBuilder().Version("3.3").Build()
		var mve *version.MalformedVersionError
		if !errors.As(err, &mve) {
			t.Errorf("Build() error = %v, want MalformedVersionError", err)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		if _, err := NewBuilder().Group("").Build(); err == nil {
			t.Error("Build() accepted an empty group")
		}
	})

	t.Run("frozen", func(t *testing.T) {
		b := linuxBuilder("3.2.0")
		cfg, err := b.Build()
		if err != nil {
			t.Fatal(err)
		}
		b.Version("3.3.2").Group("com.example")
		if cfg.Version().String() != "3.2.0" || cfg.Group() != DefaultGroup {
			t.Error("Config changed after Build()")
		}
	})
}

func TestBuilder_PredatesCatalog(t *testing.T) {
	for _, raw := range []string{"2.9.9", "0.0.1", "2.9.9-SNAPSHOT"} {
		t.Run(raw, func(t *testing.T) {
			_, err := linuxBuilder(raw).Build()
			if !errors.Is(err, ErrPredatesCatalog) {
				t.Errorf("Build() error = %v, want ErrPredatesCatalog", err)
			}
		})
	}

	if _, err := linuxBuilder("3.0.0").Build(); err != nil {
		t.Errorf("Build() at core's first release error = %v", err)
	}
}

func TestResolve_ZeroConfig(t *testing.T) {
	coords, err := NewResolver(Config{}, nil).Resolve(Request{Modules: []string{"glfw"}})
	if !errors.Is(err, ErrPredatesCatalog) {
		t.Errorf("Resolve() = %v, %v, want ErrPredatesCatalog", coords, err)
	}
}

func TestBuilder_NativesOverride(t *testing.T) {
	for _, bad := range []string{"linux", "windows-x86", "native-linux"} {
		t.Run(bad, func(t *testing.T) {
			_, err := NewBuilder().Natives(bad).Build()
			if !errors.Is(err, ErrInvalidClassifier) {
				t.Errorf("Build() error = %v, want ErrInvalidClassifier", err)
			}
		})
	}

	for _, good := range append(platform.AllClassifiers(), "natives-freebsd") {
		if _, err := NewBuilder().Natives(good).Build(); err != nil {
			t.Errorf("Natives(%q) Build() error = %v", good, err)
		}
	}
}

func TestResolve_AddonDedup(t *testing.T) {
	r := newResolver(t, linuxBuilder("3.3.2"))
	coords, err := r.Resolve(Request{Addons: []string{"joml", "joml", "lwjgl3-awt", "joml"}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"org.lwjgl:lwjgl:3.3.2",
		"org.lwjgl:lwjgl:3.3.2:natives-linux",
		"org.joml:joml:1.10.5",
		"org.lwjglx:lwjgl3-awt:0.1.8",
	}
	if got := artifacts(coords); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}
