package validation

import (
	"fmt"

	"github.com/jonathan/course-builder/internal/types"
)

// Coverage thresholds. Bloom below the minimum is a WARNING (not CRITICAL, a
// deliberate asymmetry); Bloom in the soft band only adds a note. Merrill is
// all-or-nothing: every one of the five principles is mandatory.
const (
	bloomMinimumPercent  = 60
	bloomSoftBandPercent = 70
	merrillFullPercent   = 100
)

// checkCoverage applies the declared-metric checks shared by both material
// classes. A metric the generation did not declare is skipped.
func checkCoverage(res *types.ValidationResult, meta *types.DocMetadata, mt types.MaterialType, cc *types.CumulativeContext) {
	if meta == nil {
		return
	}

	res.Metadata.BloomCoveragePercent = meta.BloomCoveragePercent
	res.Metadata.MerrillCoveragePercent = meta.MerrillCoveragePercent
	res.Metadata.TerminologyConsistency = meta.TerminologyConsistency

	if meta.BloomCoveragePercent != nil {
		bloom := *meta.BloomCoveragePercent
		switch {
		case bloom < bloomMinimumPercent:
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Bloom coverage %.0f%% is below the %d%% minimum", bloom, bloomMinimumPercent))
			res.Level = res.Level.Max(types.ValidationWarning)
		case bloom < bloomSoftBandPercent:
			// Soft band: note only, level unchanged.
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Bloom coverage %.0f%% is low; consider addressing more taxonomy levels", bloom))
		}
	}

	if meta.MerrillCoveragePercent != nil && *meta.MerrillCoveragePercent < merrillFullPercent {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Merrill coverage %.0f%%: all five principles are mandatory", *meta.MerrillCoveragePercent))
		res.Level = res.Level.Max(types.ValidationWarning)
	}

	// Terminology drift only matters once terminology exists and the material
	// is downstream of the agenda.
	if mt != types.MaterialAgenda && cc != nil && len(cc.Terminology) > 0 &&
		meta.TerminologyConsistency != nil && *meta.TerminologyConsistency < 100 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("terminology consistency %.0f%%: established terms must be reused exactly", *meta.TerminologyConsistency))
		res.Level = res.Level.Max(types.ValidationWarning)
	}
}
