package validate

import (
	"fmt"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// Bounding box for South Korean territory, Marado to Dokdo. Coordinates
// inside global bounds but outside this box are plausible OCR misreads,
// not hard failures.
const (
	minLatitude  = 33.0
	maxLatitude  = 43.0
	minLongitude = 124.0
	maxLongitude = 132.0
)

// GPS checks a coordinate pair against global latitude/longitude bounds and
// then against the Korean service region.
func GPS(latitude, longitude *float64) domain.FieldOutcome {
	if latitude == nil || longitude == nil {
		return domain.CannotValidate("gps coordinates are missing")
	}

	lat, lon := *latitude, *longitude
	if lat < -90 || lat > 90 {
		return domain.Invalid(fmt.Sprintf("latitude out of range [-90, 90]: %v", lat))
	}
	if lon < -180 || lon > 180 {
		return domain.Invalid(fmt.Sprintf("longitude out of range [-180, 180]: %v", lon))
	}

	if lat < minLatitude || lat > maxLatitude || lon < minLongitude || lon > maxLongitude {
		return domain.Warning(
			fmt.Sprintf("coordinates (%.6f, %.6f) are outside the Korean service region", lat, lon))
	}
	return domain.Valid(fmt.Sprintf("gps coordinates valid: (%.6f, %.6f)", lat, lon))
}

// Coordinates adapts the extractor's pair-or-nothing result.
func Coordinates(coords *domain.GPSCoordinates) domain.FieldOutcome {
	if coords == nil {
		return domain.CannotValidate("gps coordinates are missing")
	}
	return GPS(&coords.Latitude, &coords.Longitude)
}
