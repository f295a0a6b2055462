package numberline_test

import (
	"testing"

	"github.com/autobrr/go-numberline/pkg/numberline"
)

func TestProxyAPI(t *testing.T) {
	r, err := numberline.NewRange(0, 1)
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}
	den, ok := numberline.SelectDenominator(r, numberline.AllowedDenominators(), numberline.MinFractionTicks, numberline.MaxFractionTicks)
	if !ok || den != 6 {
		t.Fatalf("SelectDenominator=%d, %v; want 6", den, ok)
	}
	if got := numberline.FormatLabel(0.75, 4, true).String(); got != "3/4" {
		t.Fatalf("FormatLabel=%q, want 3/4", got)
	}
	var _ numberline.LabelKind = numberline.LabelMixed
}
