package body

import (
	"errors"
	"testing"
)

func TestParsePart(t *testing.T) {
	tests := []struct {
		input string
		want  Part
	}{
		{"head", Head},
		{"torso", Torso},
		{"arm-left", ArmLeft},
		{" ARM-RIGHT ", ArmRight},
		{"leg-left", LegLeft},
		{"leg-right", LegRight},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePart(tt.input)
			if err != nil {
				t.Fatalf("ParsePart(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePart(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Fatalf("round trip name = %q", got.String())
			}
		})
	}
}

func TestParsePartUnknown(t *testing.T) {
	for _, input := range []string{"", "tail", "arm_left"} {
		if _, err := ParsePart(input); !errors.Is(err, ErrUnknownPart) {
			t.Fatalf("ParsePart(%q) error = %v, want %v", input, err, ErrUnknownPart)
		}
	}
}

func TestTierOf(t *testing.T) {
	want := map[Part]Tier{
		Head:     Tier1,
		Torso:    Tier1,
		ArmLeft:  Tier2,
		ArmRight: Tier2,
		LegLeft:  Tier2,
		LegRight: Tier2,
	}
	for _, part := range Parts() {
		if got := TierOf(part); got != want[part] {
			t.Fatalf("TierOf(%s) = %d, want %d", part, got, want[part])
		}
	}
	if got := TierOf(Part(42)); got != 0 {
		t.Fatalf("TierOf(unknown) = %d, want 0", got)
	}
}

func TestCounterpart(t *testing.T) {
	if got, ok := Counterpart(Head); !ok || got != Torso {
		t.Fatalf("Counterpart(head) = %v, %v", got, ok)
	}
	if got, ok := Counterpart(Torso); !ok || got != Head {
		t.Fatalf("Counterpart(torso) = %v, %v", got, ok)
	}
	for _, limb := range Limbs() {
		if _, ok := Counterpart(limb); ok {
			t.Fatalf("expected no counterpart for %s", limb)
		}
	}
}

func TestPartsOrder(t *testing.T) {
	parts := Parts()
	if len(parts) != PartCount {
		t.Fatalf("len(Parts()) = %d, want %d", len(parts), PartCount)
	}
	for i, part := range parts {
		if int(part) != i {
			t.Fatalf("Parts()[%d] = %v", i, part)
		}
	}
	if Part(-1).Valid() || Part(PartCount).Valid() {
		t.Fatal("expected out-of-range parts to be invalid")
	}
	if Part(PartCount).String() != "unknown" {
		t.Fatalf("unexpected name for invalid part: %q", Part(PartCount).String())
	}
}
