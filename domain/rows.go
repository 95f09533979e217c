package domain

import "fmt"

// rowPreviewLen is how many leading entries of each list appear in the
// misalignment diagnostic.
const rowPreviewLen = 3

// BuildRows zips three parallel match lists (as produced by an upstream XML
// matcher) into dependency records. The lists must be the same length;
// ragged inputs would pair artifacts with the wrong versions, so they fail
// fast with a diagnostic naming each length and the head of each list.
func BuildRows(artifactIDs, groupIDs, versions any) ([]DependencyRecord, error) {
	arts := Flatten(artifactIDs)
	grps := Flatten(groupIDs)
	vers := Flatten(versions)

	if len(arts) != len(grps) || len(arts) != len(vers) {
		return nil, fmt.Errorf(
			"dependency lists not aligned: art=%d grp=%d ver=%d | arts=%v grps=%v vers=%v",
			len(arts), len(grps), len(vers),
			head(arts), head(grps), head(vers),
		)
	}

	rows := make([]DependencyRecord, 0, len(arts))
	for i := range arts {
		rows = append(rows, DependencyRecord{
			GroupID:        grps[i],
			ArtifactID:     arts[i],
			CurrentVersion: vers[i],
		})
	}
	return rows, nil
}

// head returns up to the first rowPreviewLen entries of a list.
func head(values []string) []string {
	if len(values) > rowPreviewLen {
		return values[:rowPreviewLen]
	}
	return values
}
