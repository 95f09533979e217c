package pom

import (
	"github.com/beevik/etree"

	"github.com/rios0rios0/pomupdate/domain"
)

// ProjectMeta reads the identity coordinates from the <project> element.
// A missing groupId falls back to the <parent> declaration, matching how
// Maven itself inherits the coordinate.
func (d *Document) ProjectMeta() domain.ProjectMeta {
	gid := firstChildText(d.root, "groupId")
	if gid == "" {
		gid = firstChildText(firstChildByLocal(d.root, "parent"), "groupId")
	}

	version := firstChildByLocal(d.root, "version")
	return domain.ProjectMeta{
		GroupID:          gid,
		ArtifactID:       firstChildText(d.root, "artifactId"),
		Version:          textOf(version),
		HasDirectVersion: version != nil,
	}
}

// ManagedPluginVersions extracts the pluginManagement table
// (build/pluginManagement/plugins/plugin) as artifactId -> raw version.
// Later declarations win on duplicates; property resolution happens at
// resolve time, not here.
func (d *Document) ManagedPluginVersions() map[string]string {
	out := make(map[string]string)
	for _, build := range childrenByLocal(d.root, "build") {
		for _, pm := range childrenByLocal(build, "pluginManagement") {
			for _, plugins := range childrenByLocal(pm, "plugins") {
				for _, plugin := range childrenByLocal(plugins, "plugin") {
					aid := firstChildText(plugin, "artifactId")
					ver := firstChildText(plugin, "version")
					if aid != "" && ver != "" {
						out[aid] = ver
					}
				}
			}
		}
	}
	return out
}

// plugins yields the <plugin> elements under build/plugins in document order.
func (d *Document) plugins() []*etree.Element {
	var out []*etree.Element
	for _, build := range childrenByLocal(d.root, "build") {
		for _, plugins := range childrenByLocal(build, "plugins") {
			out = append(out, childrenByLocal(plugins, "plugin")...)
		}
	}
	return out
}

// ExtractPlugins walks build/plugins/plugin and resolves each plugin's
// effective version against its pluginManagement entry and the property
// table. Records keep document order and are never deduplicated; a plugin
// with an empty artifactId still yields a record, leaving filtering policy
// to the caller.
func (d *Document) ExtractPlugins(props domain.PropertyTable) []domain.ArtifactRecord {
	managed := d.ManagedPluginVersions()

	var out []domain.ArtifactRecord
	for _, plugin := range d.plugins() {
		aid := firstChildText(plugin, "artifactId")
		explicit := firstChildText(plugin, "version")
		out = append(out, domain.ArtifactRecord{
			DependencyRecord: domain.DependencyRecord{
				GroupID:        firstChildText(plugin, "groupId"),
				ArtifactID:     aid,
				CurrentVersion: explicit,
			},
			Resolved: domain.ResolveVersion(explicit, managed[aid], props),
		})
	}
	return out
}

// ExtractPluginDependencies walks each plugin's dependencies/dependency
// children. Plugin-scoped dependencies have no management lookup in this
// model, so only explicit and property resolution apply.
func (d *Document) ExtractPluginDependencies(props domain.PropertyTable) []domain.ArtifactRecord {
	var out []domain.ArtifactRecord
	for _, plugin := range d.plugins() {
		pluginAid := firstChildText(plugin, "artifactId")
		deps := firstChildByLocal(plugin, "dependencies")
		if deps == nil {
			continue
		}
		for _, dep := range childrenByLocal(deps, "dependency") {
			version := firstChildText(dep, "version")
			out = append(out, domain.ArtifactRecord{
				DependencyRecord: domain.DependencyRecord{
					GroupID:        firstChildText(dep, "groupId"),
					ArtifactID:     firstChildText(dep, "artifactId"),
					CurrentVersion: version,
					ParentPlugin:   pluginAid,
				},
				Resolved: domain.ResolveVersion(version, "", props),
			})
		}
	}
	return out
}

// ExtractDependencies walks the project-level dependencies/dependency
// section into planner-ready records.
func (d *Document) ExtractDependencies(props domain.PropertyTable) []domain.ArtifactRecord {
	var out []domain.ArtifactRecord
	for _, deps := range childrenByLocal(d.root, "dependencies") {
		for _, dep := range childrenByLocal(deps, "dependency") {
			version := firstChildText(dep, "version")
			out = append(out, domain.ArtifactRecord{
				DependencyRecord: domain.DependencyRecord{
					GroupID:        firstChildText(dep, "groupId"),
					ArtifactID:     firstChildText(dep, "artifactId"),
					CurrentVersion: version,
				},
				Resolved: domain.ResolveVersion(version, "", props),
			})
		}
	}
	return out
}
