package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LWJGL/lwjgl3-gradle/internal/emitter"
	"github.com/LWJGL/lwjgl3-gradle/internal/manifest"
	"github.com/LWJGL/lwjgl3-gradle/internal/resolver"
	"github.com/LWJGL/lwjgl3-gradle/internal/version"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [module...]",
		Short: "Print dependency declarations for modules, a preset or a manifest",
		Example: `  lwjgl resolve glfw opengl stb
  lwjgl resolve --preset minimalVulkan --all-natives -o maven
  lwjgl resolve -f lwjgl.yaml`,
		RunE: runResolve,
	}

	f := cmd.Flags()
	f.StringP("preset", "p", "", "Preset to resolve (none, everything, gettingStarted, minimalOpenGL, minimalOpenGLES, minimalVulkan)")
	f.StringP("file", "f", "", "Manifest path (default ./"+manifest.DefaultPath+" when no modules are given)")
	f.StringP("version", "V", "", "LWJGL version (default "+version.Default+")")
	f.Bool("snapshot", false, "Use the snapshot channel")
	f.String("group", "", "Maven group (default "+resolver.DefaultGroup+")")
	f.Bool("all-natives", false, "Emit natives for every platform")
	f.String("natives", "", "Natives classifier to use instead of detecting the host")
	f.StringSlice("addon", nil, "Addon libraries to include")
	f.Bool("test", false, "Declare on the test classpath")
	f.StringP("format", "o", string(emitter.FormatKotlin), "Output format (kotlin, groovy, maven, coords, yaml)")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	v, err := newViper(cmd)
	if err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	format, err := emitter.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}

	builder := resolver.NewBuilder()
	var reqs []resolver.Request
	rawVersion := ""

	cliReq := resolver.Request{
		Preset:  v.GetString("preset"),
		Modules: args,
		Addons:  v.GetStringSlice("addon"),
		Test:    v.GetBool("test"),
	}
	hasCLIReq := cliReq.Preset != "" || len(cliReq.Modules) > 0 || len(cliReq.Addons) > 0

	// Manifest values are the base; flags and environment override them.
	path := v.GetString("file")
	if path == "" && !hasCLIReq {
		if _, err := os.Stat(manifest.DefaultPath); err == nil {
			path = manifest.DefaultPath
		}
	}
	if path != "" {
		logger.Debug("parsing manifest", "path", path)
		m, err := manifest.Parse(path)
		if err != nil {
			return fmt.Errorf("parsing manifest: %w", err)
		}
		m.Apply(builder)
		rawVersion = m.Version
		reqs = m.Requests()
	}
	if hasCLIReq {
		reqs = append(reqs, cliReq)
	}
	if len(reqs) == 0 {
		return errors.New("nothing to resolve: name modules, a --preset or a manifest")
	}

	if v.IsSet("version") {
		rawVersion = v.GetString("version")
	}
	if v.GetBool("snapshot") {
		if rawVersion == "" {
			rawVersion = version.LatestSnapshot
		} else {
			snap, err := version.Snapshot(rawVersion)
			if err != nil {
				return fmt.Errorf("selecting snapshot: %w", err)
			}
			rawVersion = snap.String()
		}
	}
	if rawVersion != "" {
		builder.Version(rawVersion)
	}
	if v.IsSet("group") {
		builder.Group(v.GetString("group"))
	}
	if v.IsSet("all-natives") {
		builder.AllNatives(v.GetBool("all-natives"))
	}
	if v.IsSet("natives") {
		builder.Natives(v.GetString("natives"))
	}

	cfg, err := builder.Build()
	if err != nil {
		return err
	}
	logger.Debug("resolving", "version", cfg.Version(), "channel", cfg.Version().Channel(), "allNatives", cfg.AllNatives())

	coords, err := resolver.NewResolver(cfg, logger).ResolveAll(reqs)
	if err != nil {
		return fmt.Errorf("resolving dependencies: %w", err)
	}
	logger.Debug("resolved coordinates", "count", len(coords))

	return emitter.NewEmitter(cmd.OutOrStdout(), format).Emit(coords)
}
