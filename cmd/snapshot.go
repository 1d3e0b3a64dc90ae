package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsbridge/tsbridge/pkg/action/generate"
	"github.com/tsbridge/tsbridge/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		params       = &generate.Params{}
		manifestPath string
		version      string
	)

	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "snapshot declarations",
		Long:  "Generate declarations and record the output as a versioned snapshot in the manifest",
		Run: func(c *cobra.Command, args []string) {
			mergeGenerateConfig(c.PersistentFlags(), params)
			out, err := snapshot.Take(params, manifestPath, version)
			if err != nil {
				slog.With("error", err).Error("snapshot failed")
				panic(err)
			}
			slog.With("file", out, "version", version).Info("snapshot recorded")
		},
	}
	snapshotCmd.PersistentFlags().StringVarP(&params.InDir, "input-directory", "i", ".", "Go source directory to scan")
	snapshotCmd.PersistentFlags().StringVarP(&params.OutDir, "output-directory", "o", "models", "directory to write declarations")
	snapshotCmd.PersistentFlags().StringVarP(&params.OutFile, "output-file", "f", "models.d.ts", "output file where declarations will be written")
	snapshotCmd.PersistentFlags().StringSliceVarP(&params.Types, "types", "t", []string{}, "root type names to generate; empty generates every exported type")
	snapshotCmd.PersistentFlags().StringSliceVarP(&params.Skip, "skip-types", "S", []string{}, "type name patterns excluded from generation")
	snapshotCmd.PersistentFlags().BoolVarP(&params.UseDate, "use-date", "d", false, "emit Date for time values instead of string")
	snapshotCmd.PersistentFlags().BoolVarP(&params.Classes, "classes", "c", false, "emit classes instead of interfaces")
	snapshotCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "models/manifest.yaml", "manifest file tracking snapshot versions")
	snapshotCmd.PersistentFlags().StringVarP(&version, "version", "v", "", "version to record for this snapshot")

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		Run: func(c *cobra.Command, args []string) {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				slog.With("error", err).Error("list failed")
				panic(err)
			}
			for _, e := range m.Entries {
				marker := " "
				if e.Version == m.Current {
					marker = "*"
				}
				fmt.Printf("%s %s\t%s\t%s\n", marker, e.Version, e.File, e.GeneratedAt.Format("2006-01-02 15:04:05"))
			}
		},
	}
	snapshotCmd.AddCommand(listCmd)

	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff current snapshot against previous",
		Run: func(c *cobra.Command, args []string) {
			diff, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				slog.With("error", err).Error("diff failed")
				panic(err)
			}
			if diff == "" {
				fmt.Println("snapshots are identical")
				return
			}
			fmt.Println(diff)
		},
	}
	snapshotCmd.AddCommand(diffCmd)

	return snapshotCmd
}
