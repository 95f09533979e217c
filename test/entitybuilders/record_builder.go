package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/pomupdate/domain"
)

// RecordBuilder helps create test dependency records with a fluent interface.
type RecordBuilder struct {
	*testkit.BaseBuilder
	groupID        string
	artifactID     string
	currentVersion string
	parentPlugin   string
}

// NewRecordBuilder creates a new record builder with sensible defaults.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		groupID:        "org.apache.maven.plugins",
		artifactID:     "maven-compiler-plugin",
		currentVersion: "3.5.1",
	}
}

// WithGroupID sets the group id.
func (b *RecordBuilder) WithGroupID(groupID string) *RecordBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifact id.
func (b *RecordBuilder) WithArtifactID(artifactID string) *RecordBuilder {
	b.artifactID = artifactID
	return b
}

// WithCurrentVersion sets the raw current version text.
func (b *RecordBuilder) WithCurrentVersion(version string) *RecordBuilder {
	b.currentVersion = version
	return b
}

// WithParentPlugin marks the record as a plugin-scoped dependency.
func (b *RecordBuilder) WithParentPlugin(plugin string) *RecordBuilder {
	b.parentPlugin = plugin
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *RecordBuilder) Build() interface{} {
	return b.BuildRecord()
}

// BuildRecord creates the record with a concrete return type.
func (b *RecordBuilder) BuildRecord() domain.DependencyRecord {
	return domain.DependencyRecord{
		GroupID:        b.groupID,
		ArtifactID:     b.artifactID,
		CurrentVersion: b.currentVersion,
		ParentPlugin:   b.parentPlugin,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "org.apache.maven.plugins"
	b.artifactID = "maven-compiler-plugin"
	b.currentVersion = "3.5.1"
	b.parentPlugin = ""
	return b
}

// Clone creates a deep copy of the RecordBuilder.
func (b *RecordBuilder) Clone() testkit.Builder {
	return &RecordBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:        b.groupID,
		artifactID:     b.artifactID,
		currentVersion: b.currentVersion,
		parentPlugin:   b.parentPlugin,
	}
}
