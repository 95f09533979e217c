package domain

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ChangeKind classifies the direction of a proposed version change.
type ChangeKind string

const (
	ChangeUpgrade   ChangeKind = "upgrade"
	ChangeDowngrade ChangeKind = "downgrade"
	// ChangeUnordered means at least one side is not a valid semantic
	// version, so no direction can be established.
	ChangeUnordered ChangeKind = "unordered"
)

// Classify compares a plan item's current and desired versions semantically.
// The enforcement decision itself never depends on this — plans are built on
// exact string comparison — but reports flag downgrades for review.
func Classify(item PlanItem) ChangeKind {
	current := canonicalVersion(item.Current)
	desired := canonicalVersion(item.Desired)
	if !semver.IsValid(current) || !semver.IsValid(desired) {
		return ChangeUnordered
	}
	switch cmp := semver.Compare(desired, current); {
	case cmp > 0:
		return ChangeUpgrade
	case cmp < 0:
		return ChangeDowngrade
	default:
		return ChangeUnordered
	}
}

// canonicalVersion prefixes "v" when missing so Maven-style versions can be
// handed to the semver package.
func canonicalVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// RenderPlanMarkdown renders an enforcement plan as the markdown table used
// in update PR descriptions and scan reports.
func RenderPlanMarkdown(file string, plan []PlanItem) string {
	var sb strings.Builder
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf(
		"Version changes proposed for `%s`:\n\n", file,
	))
	sb.WriteString("| Group | Artifact | Current | Desired | Direction |\n")
	sb.WriteString("|-------|----------|---------|---------|-----------|\n")
	for _, item := range plan {
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %s | %s | %s |\n",
			item.GroupID,
			item.ArtifactID,
			item.Current,
			item.Desired,
			Classify(item),
		))
	}
	return sb.String()
}
