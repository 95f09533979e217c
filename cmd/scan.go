package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomupdate/application"
	"github.com/rios0rios0/pomupdate/infrastructure/source"
)

var sourceFilter string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan configured sources and compute update plans",
	Long: `Scan every configured source for pom.xml descriptors, resolve the effective
version of each plugin and dependency, and print the update plan needed to
reach the desired-version table.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&sourceFilter, "source", "", "Only process sources of this type (optional)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := application.NewScanService(source.NewDefaultRegistry())

	fmt.Println("🔍 Scanning sources for Maven POM descriptors...")
	fmt.Println()

	summary, err := svc.Run(ctx, cfg, application.RunOptions{
		Verbose:    verbose,
		SourceType: sourceFilter,
		Mode:       mode,
	})
	if err != nil {
		return err
	}

	for _, report := range summary.Reports {
		if len(report.Plan) == 0 {
			continue
		}
		fmt.Printf("📁 %s (%s)\n", report.File, report.Source)
		for _, item := range report.Plan {
			fmt.Printf(
				"   └─ %s %s -> %s\n",
				formatCoordinate(item.GroupID, item.ArtifactID),
				item.Current, item.Desired,
			)
		}
		fmt.Println()
	}

	fmt.Printf(
		"✅ Scanned %d POM files, %d version changes needed (%d errors)\n",
		summary.FilesScanned, summary.TotalChanges(), summary.Errors,
	)
	return nil
}

// formatCoordinate joins group and artifact ids, omitting an empty group.
func formatCoordinate(groupID, artifactID string) string {
	if groupID == "" {
		return artifactID
	}
	return groupID + ":" + artifactID
}
