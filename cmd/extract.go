package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomupdate/domain"
	"github.com/rios0rios0/pomupdate/infrastructure/pom"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pom.xml>",
	Short: "Extract plugins and dependencies from a single POM",
	Long: `Parse one pom.xml descriptor and print its build plugins, plugin-scoped
dependencies, and project dependencies with their resolved versions and
provenance (explicit, pluginManagement, property:<name>, or none).`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	doc, err := readPom(args[0])
	if err != nil {
		return err
	}

	// Properties are optional for extraction; without a config file the
	// document is resolved against an empty table.
	props := domain.PropertyTable{}
	if cfg, cfgErr := loadConfig(); cfgErr == nil {
		props = cfg.PropertyTable()
	}

	meta := doc.ProjectMeta()
	fmt.Printf("📦 %s", formatCoordinate(meta.GroupID, meta.ArtifactID))
	if meta.Version != "" {
		fmt.Printf(" @ %s", meta.Version)
	}
	fmt.Println()
	fmt.Println()

	printRecords("Plugins", doc.ExtractPlugins(props))
	printRecords("Plugin dependencies", doc.ExtractPluginDependencies(props))
	printRecords("Dependencies", doc.ExtractDependencies(props))
	return nil
}

// readPom reads and parses the POM given on the command line.
func readPom(path string) (*pom.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return pom.Parse(string(data))
}

func printRecords(heading string, records []domain.ArtifactRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	for _, r := range records {
		name := formatCoordinate(r.GroupID, r.ArtifactID)
		if r.ParentPlugin != "" {
			name = r.ParentPlugin + " → " + name
		}
		version := r.Resolved.Effective
		if version == "" {
			version = "(unresolved)"
		}
		fmt.Printf("   └─ %s @ %s [%s]\n", name, version, r.Resolved.Source)
	}
	fmt.Println()
}
