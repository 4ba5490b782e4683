package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LWJGL/lwjgl3-gradle/internal/catalog"
	"github.com/LWJGL/lwjgl3-gradle/internal/platform"
	"github.com/LWJGL/lwjgl3-gradle/internal/version"
)

// detectClassifier is swapped in tests.
var detectClassifier = platform.DetectClassifier

func newModulesCmd() *cobra.Command {
	var raw string
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List modules and whether a version contains them",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := version.Parse(raw)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintln(w, "MODULE\tARTIFACT\tNATIVE\tSINCE\tAVAILABLE"); err != nil {
				return err
			}
			for _, m := range catalog.Modules() {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%t\n", m.Name, m.Artifact(), m.Native, m.Since, m.AvailableIn(v)); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&raw, "version", "V", version.Default, "LWJGL version to check availability against")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List presets and their modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range catalog.Presets() {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Name, strings.Join(p.Modules, ", ")); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

func newAddonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addons",
		Short: "List addon libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, a := range catalog.Addons() {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", a.Name, a.Coordinate); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print the natives classifier of this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := detectClassifier()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List known LWJGL releases and the current snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range version.Known {
				if _, err := fmt.Fprintln(out, raw); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(out, version.LatestSnapshot)
			return err
		},
	}
}
