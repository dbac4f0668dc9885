package validate

import (
	"testing"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestGPSOutcomes(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want domain.Status
	}{
		{"seoul city hall", 37.5665, 126.9780, domain.StatusValid},
		{"tokyo outside service region", 35.6762, 139.6503, domain.StatusWarning},
		{"south of the box", 32.9, 127.0, domain.StatusWarning},
		{"latitude at global bound", 90.0, 127.0, domain.StatusWarning},
		{"latitude past global bound", 90.0001, 127.0, domain.StatusInvalid},
		{"negative latitude in bounds", -90.0, 127.0, domain.StatusWarning},
		{"longitude past global bound", 37.0, 180.5, domain.StatusInvalid},
		{"longitude at global bound", 37.0, -180.0, domain.StatusWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := GPS(floatPtr(tt.lat), floatPtr(tt.lon))
			if out.Status != tt.want {
				t.Fatalf("GPS(%v, %v) = %s, want %s", tt.lat, tt.lon, out.Status, tt.want)
			}
		})
	}
}

func TestGPSMissingCoordinates(t *testing.T) {
	if out := GPS(nil, floatPtr(127.0)); out.Status != domain.StatusCannotValidate {
		t.Fatalf("missing latitude: status = %s, want CANNOT_VALIDATE", out.Status)
	}
	if out := GPS(floatPtr(37.0), nil); out.Status != domain.StatusCannotValidate {
		t.Fatalf("missing longitude: status = %s, want CANNOT_VALIDATE", out.Status)
	}
	if out := Coordinates(nil); out.Status != domain.StatusCannotValidate {
		t.Fatalf("nil pair: status = %s, want CANNOT_VALIDATE", out.Status)
	}
}

func TestCoordinatesDelegates(t *testing.T) {
	out := Coordinates(&domain.GPSCoordinates{Latitude: 37.5665, Longitude: 126.9780})
	if out.Status != domain.StatusValid {
		t.Fatalf("status = %s, want VALID", out.Status)
	}
	if out.Message != "gps coordinates valid: (37.566500, 126.978000)" {
		t.Fatalf("message = %q", out.Message)
	}
}
