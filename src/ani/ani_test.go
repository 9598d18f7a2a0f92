package ani

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestExact(t *testing.T) {
	if v := Exact(1.0, 21); v != 1.0 {
		t.Fatalf("exact ANI of a Jaccard of 1.0 should be 1.0, not %f", v)
	}
	if v := Exact(0.0, 21); v != 0.0 {
		t.Fatalf("exact ANI of a Jaccard of 0.0 should be 0.0, not %f", v)
	}
	if v := Exact(-0.5, 21); v != 0.0 {
		t.Fatalf("exact ANI of a negative Jaccard should be 0.0, not %f", v)
	}
	if v := Exact(0.25, 2); math.Abs(v-0.5) > tolerance {
		t.Fatalf("exact ANI of 0.25 with k=2 should be 0.5, not %f", v)
	}
}

func TestExactMonotonic(t *testing.T) {
	for _, k := range []int{1, 3, 15, 31} {
		prev := Exact(0.0, k)
		for j := 0.01; j <= 1.0; j += 0.01 {
			v := Exact(j, k)
			if v < prev {
				t.Fatalf("exact ANI decreased for k=%d at j=%f", k, j)
			}
			prev = v
		}
	}
}

func TestApprox(t *testing.T) {
	if v := Approx(1.0, 21); v != 1.0 {
		t.Fatalf("approximate ANI of a Jaccard of 1.0 should be 1.0, not %f", v)
	}
	if v := Approx(0.0, 21); v != 0.0 {
		t.Fatalf("approximate ANI of a Jaccard of 0.0 should be 0.0, not %f", v)
	}
	if v := Approx(math.Exp(-1), 4); math.Abs(v-0.75) > tolerance {
		t.Fatalf("approximate ANI of 1/e with k=4 should be 0.75, not %f", v)
	}
}

func TestEstimate(t *testing.T) {
	est := NewEstimate(0.9, 21)
	if est.Jaccard != 0.9 || est.Exact != Exact(0.9, 21) || est.Approx != Approx(0.9, 21) {
		t.Fatalf("NewEstimate did not populate the estimates: %+v", est)
	}
	// the log approximation always sits at or below the exact root
	if est.Drift() > 0 {
		t.Fatalf("expected a non-positive drift, got %f", est.Drift())
	}
	if math.Abs(est.Exact-est.Approx) > 0.001 {
		t.Fatalf("estimates should agree closely near j=1: %+v", est)
	}
}
