package usecase

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatio(t *testing.T) {
	t.Run("identical strings score 1.0", func(t *testing.T) {
		for _, s := range []string{"", "a", "distinction", "r1123"} {
			if got := Ratio(s, s); got != 1.0 {
				t.Errorf("Ratio(%q, %q) = %v, want 1.0", s, s, got)
			}
		}
	})

	t.Run("disjoint strings score 0.0", func(t *testing.T) {
		if got := Ratio("abc", "xyz"); got != 0.0 {
			t.Errorf("Ratio = %v, want 0.0", got)
		}
	})

	t.Run("matches known matching-block values", func(t *testing.T) {
		tests := []struct {
			a, b string
			want float64
		}{
			{"abcd", "bcde", 0.75},        // block "bcd": 2*3/8
			{"alica", "alice", 0.8},       // block "alic": 2*4/10
			{"alica", "alicia", 10.0 / 11.0}, // blocks "alic"+"a": 2*5/11
			{"distinction*", "distinction", 22.0 / 23.0},
		}

		for _, tt := range tests {
			if got := Ratio(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"abcd", "bcde"},
			{"alica", "alicia"},
			{"certificate", "certifcate"},
			{"", "abc"},
		}

		for _, p := range pairs {
			if got, rev := Ratio(p[0], p[1]), Ratio(p[1], p[0]); !almostEqual(got, rev) {
				t.Errorf("Ratio(%q, %q) = %v but Ratio(%q, %q) = %v", p[0], p[1], got, p[1], p[0], rev)
			}
		}
	})

	t.Run("stays within [0, 1]", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "aaaa"},
			{"r1123", "rl123"},
			{"xyz", ""},
		}

		for _, p := range pairs {
			got := Ratio(p[0], p[1])
			if got < 0 || got > 1 {
				t.Errorf("Ratio(%q, %q) = %v, out of range", p[0], p[1], got)
			}
		}
	})

	t.Run("handles multi-byte runes", func(t *testing.T) {
		// 5 runes vs 5 runes matching 4 ("na" + "ve"): 2*4/10
		if got := Ratio("naïve", "naive"); !almostEqual(got, 0.8) {
			t.Errorf("Ratio = %v, want 0.8", got)
		}
	})
}
