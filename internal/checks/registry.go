package checks

// Registry holds the built-in checks in report order
type Registry struct {
	checks []Check
}

// NewRegistry creates a Registry with every built-in check registered
func NewRegistry() *Registry {
	r := &Registry{}
	r.register(
		NewHeaderOverlapCheck(),
		NewColorConsistencyCheck(),
		NewTextContrastCheck(),
		NewSectionSpacingCheck(),
		NewTypographyHierarchyCheck(),
		NewResponsiveOverflowCheck(),
		NewBrokenLinksCheck(),
		NewMissingThumbnailsCheck(),
		NewUnloadedImagesCheck(),
		NewHeadlinePlaceholdersCheck(),
		NewSearchFunctionCheck(),
		NewSocialLinksCheck(),
		NewReadMoreLinksCheck(),
		NewPaginationTerminalCheck(),
		NewMobileMenuCollapseCheck(),
		NewMobileImageResizeCheck(),
		NewHorizontalScrollCheck(),
		NewConsoleErrorsCheck(),
		NewMainThreadBlockingCheck(),
		NewFooterStackingCheck(),
		NewMobileFontSizeCheck(),
		NewHomepageLoadCheck(),
		NewImageWeightCheck(),
		NewPlaceholderTextCheck(),
		NewTwitterRedirectCheck(),
		NewMobileTextOverlapCheck(),
	)
	return r
}

func (r *Registry) register(checks ...Check) {
	r.checks = append(r.checks, checks...)
}

// All returns every registered check in report order
func (r *Registry) All() []Check {
	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// Snapshots returns the checks that evaluate captured evidence
func (r *Registry) Snapshots() []SnapshotCheck {
	return Snapshots(r.checks)
}

// Pages returns the checks that drive the live page
func (r *Registry) Pages() []PageCheck {
	return Pages(r.checks)
}

// Snapshots filters a selection down to the offline checks
func Snapshots(list []Check) []SnapshotCheck {
	var out []SnapshotCheck
	for _, c := range list {
		if sc, ok := c.(SnapshotCheck); ok {
			out = append(out, sc)
		}
	}
	return out
}

// Pages filters a selection down to the interactive checks
func Pages(list []Check) []PageCheck {
	var out []PageCheck
	for _, c := range list {
		if pc, ok := c.(PageCheck); ok {
			out = append(out, pc)
		}
	}
	return out
}

// Len returns the number of registered checks
func (r *Registry) Len() int {
	return len(r.checks)
}
