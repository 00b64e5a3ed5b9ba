package slider

import (
	"testing"

	"github.com/fieldkit/curve"
)

func TestControlSizeGeometry(t *testing.T) {
	tests := []struct {
		cs   ControlSize
		want Geometry
		dial DialGeometry
	}{
		{Mini, Geometry{curve.Sz(14, 14), 3}, DialGeometry{32, 1, 1}},
		{Small, Geometry{curve.Sz(16, 16), 3}, DialGeometry{40, 2, 2}},
		{Regular, Geometry{curve.Sz(20, 20), 4}, DialGeometry{64, 2, 2}},
		{Large, Geometry{curve.Sz(20, 20), 4}, DialGeometry{80, 4, 3}},
		{ExtraLarge, Geometry{curve.Sz(20, 20), 4}, DialGeometry{64, 4, 2}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.cs.Geometry())
		diff(t, tt.dial, tt.cs.DialGeometry())
	}

	var zero ControlSize
	diff(t, Regular, zero)
}

func TestParseControlSize(t *testing.T) {
	for _, cs := range []ControlSize{Regular, Mini, Small, Large, ExtraLarge} {
		got, err := ParseControlSize(cs.String())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, cs, got)
	}
	if got, err := ParseControlSize("Extra-Large"); err != nil || got != ExtraLarge {
		t.Errorf("got %v, %v; want extra-large", got, err)
	}
	if _, err := ParseControlSize("huge"); err == nil {
		t.Error("expected an error for an unknown size")
	}
	diff(t, "ControlSize(42)", ControlSize(42).String())
}
