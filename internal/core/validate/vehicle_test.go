package validate

import (
	"testing"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

func TestVehicleOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		want  domain.Status
	}{
		{"new format", "80구8713", domain.StatusValid},
		{"new format three digits", "123가4567", domain.StatusValid},
		{"old format with region", "서울12가3456", domain.StatusValid},
		{"spaced plate normalized", "80구 8713", domain.StatusValid},
		{"truncated but plate-like", "가8713", domain.StatusWarning},
		{"latin letters", "ABCD1234", domain.StatusInvalid},
		{"digits only", "8713", domain.StatusInvalid},
		{"hangul only", "서울", domain.StatusInvalid},
		{"blank", "", domain.StatusCannotValidate},
		{"whitespace only", "   ", domain.StatusCannotValidate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Vehicle(tt.plate)
			if out.Status != tt.want {
				t.Fatalf("Vehicle(%q) = %s, want %s", tt.plate, out.Status, tt.want)
			}
		})
	}
}

func TestVehicleMessagesNameTheFormat(t *testing.T) {
	if got := Vehicle("80구8713").Message; got != "new-format plate: 80구8713" {
		t.Fatalf("new-format message = %q", got)
	}
	if got := Vehicle("서울12가3456").Message; got != "old-format plate: 서울12가3456" {
		t.Fatalf("old-format message = %q", got)
	}
}
