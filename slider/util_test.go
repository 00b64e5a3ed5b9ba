package slider

import (
	"testing"

	"github.com/fieldkit/curve"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want curve.Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Errorf("got %s, expected %s", got, want)
	}
}
