package application

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomupdate/config"
	"github.com/rios0rios0/pomupdate/domain"
	"github.com/rios0rios0/pomupdate/infrastructure/pom"
	sourcePkg "github.com/rios0rios0/pomupdate/infrastructure/source"
)

// ScanService orchestrates the full enforcement flow:
// list POM files per source -> extract records -> build update plans.
type ScanService struct {
	sourceRegistry *sourcePkg.Registry
}

// NewScanService creates a new service with the given source registry.
func NewScanService(sourceRegistry *sourcePkg.Registry) *ScanService {
	return &ScanService{sourceRegistry: sourceRegistry}
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Verbose    bool
	SourceType string // If set, only process sources of this type (CLI override)
	Mode       string // If set, overrides the configured enforcement mode
}

// FileReport is the extraction and planning result for one POM document.
type FileReport struct {
	Source             string
	File               string
	Plugins            []domain.ArtifactRecord
	PluginDependencies []domain.ArtifactRecord
	Dependencies       []domain.ArtifactRecord
	Plan               []domain.PlanItem
}

// Summary aggregates a whole run.
type Summary struct {
	Reports      []FileReport
	FilesScanned int
	Errors       int
}

// Run executes the scan over every configured source. Per-document failures
// are logged and counted; only configuration-level problems (unknown mode,
// unreadable desired-version table) abort the run.
func (s *ScanService) Run(
	ctx context.Context,
	cfg *config.Config,
	runOpts RunOptions,
) (*Summary, error) {
	if runOpts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	modeStr := cfg.Mode
	if runOpts.Mode != "" {
		modeStr = runOpts.Mode
	}
	mode, err := domain.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	desired, err := cfg.DesiredVersions()
	if err != nil {
		return nil, err
	}
	props := cfg.PropertyTable()

	summary := &Summary{}
	for _, srcCfg := range cfg.Sources {
		// Skip if CLI filter is set and doesn't match
		if runOpts.SourceType != "" && srcCfg.Type != runOpts.SourceType {
			continue
		}

		src, srcErr := s.sourceRegistry.Get(srcCfg.Type, srcCfg.Path)
		if srcErr != nil {
			logger.Errorf("Failed to initialize source %q: %v", srcCfg.Type, srcErr)
			summary.Errors++
			continue
		}

		logger.Infof("Processing source: %s (%s)", src.Name(), srcCfg.Path)
		s.processSource(ctx, src, desired, props, mode, summary)
	}

	logger.Infof(
		"Run complete: %d POM files scanned, %d changes planned, %d errors",
		summary.FilesScanned, summary.TotalChanges(), summary.Errors,
	)
	return summary, nil
}

// processSource scans every POM document one source exposes.
func (s *ScanService) processSource(
	ctx context.Context,
	src domain.Source,
	desired domain.DesiredVersionTable,
	props domain.PropertyTable,
	mode domain.Mode,
	summary *Summary,
) {
	files, err := src.ListPomFiles(ctx)
	if err != nil {
		logger.Errorf("[%s] Failed to list POM files: %v", src.Name(), err)
		summary.Errors++
		return
	}
	logger.Infof("[%s] Found %d POM files", src.Name(), len(files))

	for _, file := range files {
		content, contentErr := src.GetFileContent(ctx, file.Path)
		if contentErr != nil {
			logger.Warnf("[%s] Failed to read %s: %v", src.Name(), file.Path, contentErr)
			summary.Errors++
			continue
		}

		report, reportErr := buildReport(src.Name(), file.Path, content, desired, props, mode)
		if reportErr != nil {
			logger.Warnf("[%s] Failed to process %s: %v", src.Name(), file.Path, reportErr)
			summary.Errors++
			continue
		}

		summary.FilesScanned++
		summary.Reports = append(summary.Reports, *report)

		if len(report.Plan) > 0 {
			logger.Infof(
				"[%s] %s: %d version changes needed",
				src.Name(), file.Path, len(report.Plan),
			)
		} else {
			logger.Debugf("[%s] %s: up to date", src.Name(), file.Path)
		}
	}
}

// buildReport extracts one document and diffs it against the desired table.
// Records keep document order: project dependencies, then build plugins,
// then plugin-scoped dependencies.
func buildReport(
	sourceName, filePath, content string,
	desired domain.DesiredVersionTable,
	props domain.PropertyTable,
	mode domain.Mode,
) (*FileReport, error) {
	doc, err := pom.Parse(content)
	if err != nil {
		return nil, err
	}

	report := &FileReport{
		Source:             sourceName,
		File:               filePath,
		Plugins:            doc.ExtractPlugins(props),
		PluginDependencies: doc.ExtractPluginDependencies(props),
		Dependencies:       doc.ExtractDependencies(props),
	}

	records := make(
		[]domain.DependencyRecord, 0,
		len(report.Dependencies)+len(report.Plugins)+len(report.PluginDependencies),
	)
	for _, group := range [][]domain.ArtifactRecord{
		report.Dependencies, report.Plugins, report.PluginDependencies,
	} {
		for _, r := range group {
			records = append(records, r.DependencyRecord)
		}
	}

	plan, err := domain.BuildPlan(records, desired, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan for %s: %w", filePath, err)
	}
	report.Plan = plan
	return report, nil
}

// TotalChanges counts planned items across all reports.
func (s *Summary) TotalChanges() int {
	total := 0
	for _, r := range s.Reports {
		total += len(r.Plan)
	}
	return total
}
