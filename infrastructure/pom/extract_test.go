package pom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomupdate/domain"
	"github.com/rios0rios0/pomupdate/infrastructure/pom"
)

const simplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <groupId>com.example</groupId>
  <artifactId>service</artifactId>
  <version>1.0.0</version>
  <build>
    <plugins>
      <plugin>
        <groupId>org.apache.maven.plugins</groupId>
        <artifactId>maven-compiler-plugin</artifactId>
        <version>3.5.1</version>
      </plugin>
    </plugins>
  </build>
</project>`

const namespacedPom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <artifactId>service</artifactId>
  <properties>
    <compiler.version>3.8.0</compiler.version>
  </properties>
  <build>
    <plugins>
      <plugin>
        <artifactId>maven-compiler-plugin</artifactId>
        <version>${compiler.version}</version>
      </plugin>
    </plugins>
  </build>
</project>`

const managedPom = `<project>
  <build>
    <pluginManagement>
      <plugins>
        <plugin>
          <artifactId>maven-surefire-plugin</artifactId>
          <version>2.19.1</version>
        </plugin>
        <plugin>
          <artifactId>maven-surefire-plugin</artifactId>
          <version>2.22.0</version>
        </plugin>
      </plugins>
    </pluginManagement>
    <plugins>
      <plugin>
        <artifactId>maven-surefire-plugin</artifactId>
      </plugin>
      <plugin>
        <artifactId>maven-jar-plugin</artifactId>
      </plugin>
    </plugins>
  </build>
</project>`

const pluginDepsPom = `<project>
  <build>
    <plugins>
      <plugin>
        <artifactId>maven-surefire-plugin</artifactId>
        <version>2.19.1</version>
        <dependencies>
          <dependency>
            <groupId>org.apache.maven.surefire</groupId>
            <artifactId>surefire-junit47</artifactId>
            <version>2.19.1</version>
          </dependency>
          <dependency>
            <artifactId>surefire-testng</artifactId>
            <version>${surefire.version}</version>
          </dependency>
        </dependencies>
      </plugin>
      <plugin>
        <artifactId>maven-jar-plugin</artifactId>
        <version>3.0.0</version>
      </plugin>
    </plugins>
  </build>
</project>`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should fail fast on malformed XML", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := pom.Parse("<project><build></project>")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse POM XML")
	})

	t.Run("should fail on an empty document", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := pom.Parse("")

		// then
		require.Error(t, err)
	})

	t.Run("should parse a well-formed document", func(t *testing.T) {
		t.Parallel()

		// when
		doc, err := pom.Parse(simplePom)

		// then
		require.NoError(t, err)
		assert.NotNil(t, doc)
	})
}

func TestProjectMeta(t *testing.T) {
	t.Parallel()

	t.Run("should read the project coordinates", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(simplePom)
		require.NoError(t, err)

		// when
		meta := doc.ProjectMeta()

		// then
		assert.Equal(t, "com.example", meta.GroupID)
		assert.Equal(t, "service", meta.ArtifactID)
		assert.Equal(t, "1.0.0", meta.Version)
		assert.True(t, meta.HasDirectVersion)
	})

	t.Run("should fall back to the parent groupId", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(`<project>
  <parent>
    <groupId>com.example.parent</groupId>
    <artifactId>parent</artifactId>
    <version>2.0.0</version>
  </parent>
  <artifactId>child</artifactId>
</project>`)
		require.NoError(t, err)

		// when
		meta := doc.ProjectMeta()

		// then
		assert.Equal(t, "com.example.parent", meta.GroupID)
		assert.Equal(t, "child", meta.ArtifactID)
		assert.Empty(t, meta.Version)
		assert.False(t, meta.HasDirectVersion)
	})
}

func TestExtractPlugins(t *testing.T) {
	t.Parallel()

	t.Run("should extract an explicit plugin version", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(simplePom)
		require.NoError(t, err)

		// when
		plugins := doc.ExtractPlugins(domain.PropertyTable{})

		// then
		require.Len(t, plugins, 1)
		assert.Equal(t, "maven-compiler-plugin", plugins[0].ArtifactID)
		assert.Equal(t, "org.apache.maven.plugins", plugins[0].GroupID)
		assert.Equal(t, "3.5.1", plugins[0].Resolved.Effective)
		assert.Equal(t, domain.SourceExplicit, plugins[0].Resolved.Source)
	})

	t.Run("should ignore namespace declarations", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(namespacedPom)
		require.NoError(t, err)
		props := domain.PropertyTable{"compiler.version": "3.8.0"}

		// when
		plugins := doc.ExtractPlugins(props)

		// then
		require.Len(t, plugins, 1)
		assert.Equal(t, "maven-compiler-plugin", plugins[0].ArtifactID)
		assert.Equal(t, "3.8.0", plugins[0].Resolved.Effective)
		assert.Equal(t, "property:compiler.version", plugins[0].Resolved.Source)
	})

	t.Run("should fall back to pluginManagement with last declaration winning", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(managedPom)
		require.NoError(t, err)

		// when
		plugins := doc.ExtractPlugins(domain.PropertyTable{})

		// then
		require.Len(t, plugins, 2)
		assert.Equal(t, "2.22.0", plugins[0].Resolved.Effective)
		assert.Equal(t, domain.SourceManaged, plugins[0].Resolved.Source)
		// no managed entry for maven-jar-plugin
		assert.Empty(t, plugins[1].Resolved.Effective)
		assert.Equal(t, domain.SourceNone, plugins[1].Resolved.Source)
	})

	t.Run("should keep the raw version text on the record", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(namespacedPom)
		require.NoError(t, err)

		// when
		plugins := doc.ExtractPlugins(domain.PropertyTable{})

		// then: the record carries the literal ${...} for the planner,
		// while resolution reports the property provenance
		require.Len(t, plugins, 1)
		assert.Equal(t, "${compiler.version}", plugins[0].CurrentVersion)
		assert.Equal(t, "property:compiler.version", plugins[0].Resolved.Source)
	})

	t.Run("should keep duplicate plugin declarations in document order", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(`<project>
  <build>
    <plugins>
      <plugin><artifactId>dup</artifactId><version>1.0</version></plugin>
      <plugin><artifactId>dup</artifactId><version>2.0</version></plugin>
    </plugins>
  </build>
</project>`)
		require.NoError(t, err)

		// when
		plugins := doc.ExtractPlugins(domain.PropertyTable{})

		// then
		require.Len(t, plugins, 2)
		assert.Equal(t, "1.0", plugins[0].Resolved.Effective)
		assert.Equal(t, "2.0", plugins[1].Resolved.Effective)
	})

	t.Run("should keep a record for a plugin without an artifactId", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(`<project>
  <build>
    <plugins>
      <plugin><version>1.0</version></plugin>
    </plugins>
  </build>
</project>`)
		require.NoError(t, err)

		// when
		plugins := doc.ExtractPlugins(domain.PropertyTable{})

		// then: filtering policy belongs to the caller
		require.Len(t, plugins, 1)
		assert.Empty(t, plugins[0].ArtifactID)
		assert.Equal(t, "1.0", plugins[0].Resolved.Effective)
	})
}

func TestExtractPluginDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should extract dependencies with their parent plugin", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(pluginDepsPom)
		require.NoError(t, err)
		props := domain.PropertyTable{"surefire.version": "2.19.1"}

		// when
		deps := doc.ExtractPluginDependencies(props)

		// then
		require.Len(t, deps, 2)
		assert.Equal(t, "maven-surefire-plugin", deps[0].ParentPlugin)
		assert.Equal(t, "surefire-junit47", deps[0].ArtifactID)
		assert.Equal(t, "org.apache.maven.surefire", deps[0].GroupID)
		assert.Equal(t, "2.19.1", deps[0].Resolved.Effective)
		assert.Equal(t, domain.SourceExplicit, deps[0].Resolved.Source)

		assert.Equal(t, "surefire-testng", deps[1].ArtifactID)
		assert.Equal(t, "2.19.1", deps[1].Resolved.Effective)
		assert.Equal(t, "property:surefire.version", deps[1].Resolved.Source)
	})

	t.Run("should skip plugins without a dependencies section", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(simplePom)
		require.NoError(t, err)

		// when
		deps := doc.ExtractPluginDependencies(domain.PropertyTable{})

		// then
		assert.Empty(t, deps)
	})
}

func TestExtractDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should extract project-level dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(`<project>
  <dependencies>
    <dependency>
      <groupId>com.x</groupId>
      <artifactId>a</artifactId>
      <version>1.0</version>
    </dependency>
    <dependency>
      <groupId>com.y</groupId>
      <artifactId>b</artifactId>
    </dependency>
  </dependencies>
</project>`)
		require.NoError(t, err)

		// when
		deps := doc.ExtractDependencies(domain.PropertyTable{})

		// then
		require.Len(t, deps, 2)
		assert.Equal(t, "a", deps[0].ArtifactID)
		assert.Equal(t, "1.0", deps[0].Resolved.Effective)
		// a managed-elsewhere dependency resolves to none here
		assert.Equal(t, domain.SourceNone, deps[1].Resolved.Source)
	})
}

func TestManagedPluginVersions(t *testing.T) {
	t.Parallel()

	t.Run("should skip management entries without artifactId or version", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := pom.Parse(`<project>
  <build>
    <pluginManagement>
      <plugins>
        <plugin><artifactId>kept</artifactId><version>1.0</version></plugin>
        <plugin><artifactId>no-version</artifactId></plugin>
        <plugin><version>2.0</version></plugin>
      </plugins>
    </pluginManagement>
  </build>
</project>`)
		require.NoError(t, err)

		// when
		managed := doc.ManagedPluginVersions()

		// then
		assert.Equal(t, map[string]string{"kept": "1.0"}, managed)
	})
}
