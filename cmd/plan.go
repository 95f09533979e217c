package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomupdate/domain"
)

var markdownOutput bool

var planCmd = &cobra.Command{
	Use:   "plan <pom.xml>",
	Short: "Compute the update plan for a single POM",
	Long: `Parse one pom.xml descriptor, diff its plugin and dependency versions
against the configured desired-version table, and print the resulting update
plan. In literal mode (the default) property-backed versions are never
proposed for change.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&markdownOutput, "markdown", false, "Render the plan as a markdown table")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := readPom(args[0])
	if err != nil {
		return err
	}
	props := cfg.PropertyTable()

	desired, err := cfg.DesiredVersions()
	if err != nil {
		return err
	}

	modeStr := cfg.Mode
	if mode != "" {
		modeStr = mode
	}
	planMode, err := domain.ParseMode(modeStr)
	if err != nil {
		return err
	}

	var records []domain.DependencyRecord
	for _, group := range [][]domain.ArtifactRecord{
		doc.ExtractDependencies(props),
		doc.ExtractPlugins(props),
		doc.ExtractPluginDependencies(props),
	} {
		for _, r := range group {
			records = append(records, r.DependencyRecord)
		}
	}

	plan, err := domain.BuildPlan(records, desired, planMode)
	if err != nil {
		return err
	}

	if markdownOutput {
		fmt.Print(domain.RenderPlanMarkdown(args[0], plan))
		return nil
	}

	if len(plan) == 0 {
		fmt.Println("✅ Already at desired versions")
		return nil
	}

	for _, item := range plan {
		fmt.Printf(
			"%s %s -> %s (%s)\n",
			formatCoordinate(item.GroupID, item.ArtifactID),
			item.Current, item.Desired, domain.Classify(item),
		)
	}
	return nil
}
