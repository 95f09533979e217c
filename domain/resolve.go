package domain

// ResolveVersion decides the single effective version for a plugin or
// dependency occurrence:
//
//  1. Use explicit when non-empty. A ${prop} reference is looked up in the
//     property table and wins even when the lookup comes back empty — an
//     explicit reference is an intentional binding, so resolution never falls
//     through to the managed value.
//  2. Otherwise apply the same logic to managed (the pluginManagement entry).
//  3. Otherwise the version is unresolved: effective "" with source "none".
func ResolveVersion(explicit, managed string, props PropertyTable) ResolvedVersion {
	if r, ok := resolveOne(explicit, SourceExplicit, props); ok {
		return r
	}
	if r, ok := resolveOne(managed, SourceManaged, props); ok {
		return r
	}
	return ResolvedVersion{Effective: "", Source: SourceNone}
}

// resolveOne resolves a single raw value. The second return is false only
// when the value is empty after trimming, i.e. there was nothing to resolve.
func resolveOne(value, fallbackSource string, props PropertyTable) (ResolvedVersion, bool) {
	value = Normalize(value)
	if value == "" {
		return ResolvedVersion{}, false
	}
	if name := PropertyName(value); name != "" {
		return ResolvedVersion{
			Effective: Normalize(props.Get(name)),
			Source:    "property:" + name,
		}, true
	}
	return ResolvedVersion{Effective: value, Source: fallbackSource}, true
}
