package domain

import "strings"

// NormalizeDesired canonicalizes an externally supplied desired-version
// mapping: keys are lower-cased and trimmed, values stringified and trimmed,
// and entries with an empty key or value are dropped. Key shapes are opaque
// here — callers may supply bare artifact ids or "group:artifact" composites.
// The operation is idempotent.
func NormalizeDesired(raw map[string]any) DesiredVersionTable {
	out := make(DesiredVersionTable, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		key := strings.ToLower(Normalize(k))
		val := Normalize(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	return out
}

// LookupKeys returns the desired-table probe keys for a record, most specific
// first: "group:artifact" (only when both parts are non-empty), then the bare
// artifact id. All lower-cased.
func LookupKeys(record DependencyRecord) []string {
	gid := strings.ToLower(Normalize(record.GroupID))
	aid := strings.ToLower(Normalize(record.ArtifactID))

	var keys []string
	if gid != "" && aid != "" {
		keys = append(keys, gid+":"+aid)
	}
	if aid != "" {
		keys = append(keys, aid)
	}
	return keys
}

// DesiredVersion probes the table with the record's lookup keys in order and
// returns the first non-empty hit, or "" when no target is configured.
func (t DesiredVersionTable) DesiredVersion(record DependencyRecord) string {
	for _, key := range LookupKeys(record) {
		if v, ok := t[key]; ok {
			return Normalize(v)
		}
	}
	return ""
}
