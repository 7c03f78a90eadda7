package core

// Deprecation is an advisory attached to a still-resolvable but
// superseded entry or variant. It is metadata on a successful lookup,
// never an error: callers decide whether to warn, fail, or ignore.
//
// Hint, when present, names the preferred replacement as a
// human-readable dotted path. It is advisory text, not a live
// reference — the replacement may itself have been renamed since the
// catalog was authored, so the hint is not guaranteed to resolve.
type Deprecation struct {
	// Message explains why the entry or variant is deprecated.
	Message string

	// Hint optionally names the canonical replacement path,
	// e.g. "arrow.r.double".
	Hint string
}

// IsZero reports whether d carries no deprecation at all.
func (d Deprecation) IsZero() bool { return d.Message == "" && d.Hint == "" }

// String renders the advisory in a single line suitable for warnings.
func (d Deprecation) String() string {
	switch {
	case d.IsZero():
		return ""
	case d.Message == "":
		return "deprecated, use " + d.Hint + " instead"
	case d.Hint == "":
		return d.Message
	default:
		return d.Message + ", use " + d.Hint + " instead"
	}
}
