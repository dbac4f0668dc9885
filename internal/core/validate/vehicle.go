package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// Korean plate shapes. New format drops the region prefix: 80구8713.
// Old format keeps it: 서울12가3456.
var (
	newPlateFormat = regexp.MustCompile(`^\d{2,3}[가-힣]\d{4}$`)
	oldPlateFormat = regexp.MustCompile(`^[가-힣]{2}\d{2}[가-힣]\d{4}$`)
	plateSpaces    = regexp.MustCompile(`\s+`)
)

// Vehicle checks a plate token against the two standard shapes. A token with
// at least one Korean syllable and one digit is still presumed a plate — OCR
// drops characters often enough that a hard fail would be wrong.
func Vehicle(plate string) domain.FieldOutcome {
	if strings.TrimSpace(plate) == "" {
		return domain.CannotValidate("vehicle number is missing")
	}

	stripped := plateSpaces.ReplaceAllString(strings.TrimSpace(plate), "")

	switch {
	case newPlateFormat.MatchString(stripped):
		return domain.Valid("new-format plate: " + plate)
	case oldPlateFormat.MatchString(stripped):
		return domain.Valid("old-format plate: " + plate)
	case containsHangulAndDigits(stripped):
		return domain.Warning("non-standard token but presumed a plate: " + plate)
	default:
		return domain.Invalid("not a recognizable vehicle number: " + plate)
	}
}

func containsHangulAndDigits(s string) bool {
	var hangul, digit bool
	for _, r := range s {
		switch {
		case r >= '가' && r <= '힣':
			hangul = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return hangul && digit
}
