package domain

// PropertyTable maps Maven property names to their already-resolved values.
// Keys are case-sensitive; a missing key resolves to "" rather than an error.
type PropertyTable map[string]string

// Get returns the value for name, or "" when the property is absent.
func (t PropertyTable) Get(name string) string {
	return t[name]
}

// ResolvedVersion is the outcome of version resolution for one artifact.
type ResolvedVersion struct {
	Effective string // resolved version text; "" when nothing resolved
	Source    string // "explicit", "pluginManagement", "property:<name>", or "none"
}

// Provenance values produced by ResolveVersion.
const (
	SourceExplicit = "explicit"
	SourceManaged  = "pluginManagement"
	SourceNone     = "none"
)

// DependencyRecord is one dependency or plugin occurrence as written in the
// POM. CurrentVersion holds the raw text (possibly a ${property} reference);
// ParentPlugin is set only for plugin-scoped dependencies.
type DependencyRecord struct {
	GroupID        string
	ArtifactID     string
	CurrentVersion string
	ParentPlugin   string
}

// ArtifactRecord pairs an extracted occurrence with its resolved version.
type ArtifactRecord struct {
	DependencyRecord
	Resolved ResolvedVersion
}

// DesiredVersionTable maps normalized lookup keys ("group:artifact" or bare
// "artifact", lower-cased and trimmed) to target versions. Empty values are
// dropped at construction and never stored.
type DesiredVersionTable map[string]string

// PlanItem is one proposed version change in an enforcement plan.
type PlanItem struct {
	GroupID    string
	ArtifactID string
	Current    string
	Desired    string
}

// ProjectMeta holds the identity coordinates of a POM's <project> element.
type ProjectMeta struct {
	GroupID          string
	ArtifactID       string
	Version          string
	HasDirectVersion bool // version declared on <project> itself, not inherited
}

// UpdateMode describes how a raw version value can be rewritten.
type UpdateMode struct {
	IsPropRef bool
	PropName  string
}
