package validate

import (
	"fmt"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// WeightTolerance is the accepted gap, in kg, between the calculated and the
// reported net weight. OCR misreads a digit now and then; 10 kg absorbs that
// without hiding a real mismatch.
const WeightTolerance = 10

// Weight checks total - empty against the reported net weight. With no net
// weight to compare, the calculated value is still returned (CALCULATED).
func Weight(total, empty, net *int) domain.FieldOutcome {
	if total == nil || empty == nil {
		return domain.CannotValidate("total or empty weight is missing")
	}

	calculated := *total - *empty

	if net == nil {
		return domain.Calculated(calculated,
			fmt.Sprintf("no reported net weight; calculated %dkg", calculated))
	}

	difference := calculated - *net
	if difference < 0 {
		difference = -difference
	}
	if difference <= WeightTolerance {
		return domain.Valid(
			fmt.Sprintf("weight check passed (difference %dkg)", difference)).
			WithCalculated(calculated)
	}
	return domain.Invalid(
		fmt.Sprintf("calculated net weight %dkg differs from reported %dkg by %dkg (tolerance %dkg)",
			calculated, *net, difference, WeightTolerance)).
		WithCalculated(calculated)
}

// WeightRange flags physically impossible weight pairs: negative values, or
// an empty vehicle outweighing the loaded one.
func WeightRange(total, empty *int) domain.FieldOutcome {
	if total == nil || empty == nil {
		return domain.CannotValidate("weight values are missing")
	}
	if *total < 0 || *empty < 0 {
		return domain.Invalid("weights must not be negative")
	}
	if *empty > *total {
		return domain.Invalid(
			fmt.Sprintf("empty weight %dkg exceeds total weight %dkg", *empty, *total))
	}
	return domain.Valid("weight range ok")
}
