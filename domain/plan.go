package domain

import "fmt"

// Mode selects how the enforcement planner treats property-backed versions.
type Mode string

const (
	// ModeLiteral skips records whose current version is a ${property}
	// reference: the real value lives in a property definition elsewhere in
	// the document, so a naive text replacement would corrupt it.
	ModeLiteral Mode = "literal"

	// ModeAll includes property-backed versions in the plan, for callers
	// that rewrite property definitions themselves.
	ModeAll Mode = "all"
)

// ParseMode validates a mode string. Unknown values are a caller contract
// violation, never silently defaulted.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLiteral, ModeAll:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown enforcement mode: %q", s)
	}
}

// BuildPlan diffs the extracted records against the desired-version table and
// returns the ordered update plan. A record yields a PlanItem only when a
// desired version is configured for it and differs from the current value
// (exact string comparison — no semantic version ordering). Output order is
// input order.
func BuildPlan(
	records []DependencyRecord,
	desired DesiredVersionTable,
	mode Mode,
) ([]PlanItem, error) {
	if mode != ModeLiteral && mode != ModeAll {
		return nil, fmt.Errorf("unknown enforcement mode: %q", mode)
	}

	plan := []PlanItem{}
	for _, record := range records {
		current := Normalize(record.CurrentVersion)
		if mode == ModeLiteral && IsPropertyRef(current) {
			continue
		}

		desiredVer := desired.DesiredVersion(record)
		if desiredVer == "" {
			continue
		}
		if current != desiredVer {
			plan = append(plan, PlanItem{
				GroupID:    record.GroupID,
				ArtifactID: record.ArtifactID,
				Current:    current,
				Desired:    desiredVer,
			})
		}
	}
	return plan, nil
}
