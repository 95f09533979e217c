package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/pomupdate/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("should classify an upgrade", func(t *testing.T) {
		t.Parallel()

		// given
		item := domain.PlanItem{Current: "1.0.0", Desired: "2.0.0"}

		// then
		assert.Equal(t, domain.ChangeUpgrade, domain.Classify(item))
	})

	t.Run("should classify a downgrade", func(t *testing.T) {
		t.Parallel()

		// given
		item := domain.PlanItem{Current: "3.5.1", Desired: "3.5.0"}

		// then
		assert.Equal(t, domain.ChangeDowngrade, domain.Classify(item))
	})

	t.Run("should handle v-prefixed versions", func(t *testing.T) {
		t.Parallel()

		// given
		item := domain.PlanItem{Current: "v1.2.3", Desired: "1.3.0"}

		// then
		assert.Equal(t, domain.ChangeUpgrade, domain.Classify(item))
	})

	t.Run("should report unordered for non-semver versions", func(t *testing.T) {
		t.Parallel()

		// given
		item := domain.PlanItem{Current: "2.19.1-SNAPSHOT!", Desired: "final"}

		// then
		assert.Equal(t, domain.ChangeUnordered, domain.Classify(item))
	})
}

func TestRenderPlanMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("should render one table row per plan item", func(t *testing.T) {
		t.Parallel()

		// given
		plan := []domain.PlanItem{
			{GroupID: "com.x", ArtifactID: "a", Current: "1.0.0", Desired: "1.1.0"},
			{GroupID: "com.y", ArtifactID: "b", Current: "2.1.0", Desired: "2.0.0"},
		}

		// when
		out := domain.RenderPlanMarkdown("service/pom.xml", plan)

		// then
		assert.Contains(t, out, "`service/pom.xml`")
		assert.Contains(t, out, "| com.x | a | 1.0.0 | 1.1.0 | upgrade |")
		assert.Contains(t, out, "| com.y | b | 2.1.0 | 2.0.0 | downgrade |")
	})

	t.Run("should render the header even for an empty plan", func(t *testing.T) {
		t.Parallel()

		// when
		out := domain.RenderPlanMarkdown("pom.xml", nil)

		// then
		assert.Contains(t, out, "## Summary")
		assert.Contains(t, out, "| Group | Artifact | Current | Desired | Direction |")
	})
}
