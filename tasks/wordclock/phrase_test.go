package wordclock

import (
	"strings"
	"testing"
)

func TestApproxTime(t *testing.T) {
	cases := []struct {
		h, m int
		want string
	}{
		{3, 0, "it is three o'clock"},
		{3, 4, "it is three o'clock"},
		{3, 5, "it is five minutes past three"},
		{3, 14, "it is ten minutes past three"},
		{3, 16, "it is quarter past three"},
		{3, 20, "it is twenty minutes past three"},
		{3, 29, "it is twenty five minutes past three"},
		{3, 30, "it is half past three"},
		{0, 50, "it is ten minutes to one"},
		{12, 37, "it is twenty five minutes to one"},
		{0, 3, "it is twelve o'clock"},
		{12, 40, "it is twenty minutes to one"},
		{11, 45, "it is quarter to twelve"},
		{11, 59, "it is five minutes to twelve"},
		{15, 20, "it is twenty minutes past three"},
		{23, 40, "it is twenty minutes to twelve"},
		{7, 60, "it is seven o'clock"},
		{7, -1, "it is seven o'clock"},
	}
	for _, tc := range cases {
		if got := ApproxTime(tc.h, tc.m); got != tc.want {
			t.Fatalf("ApproxTime(%d, %d) = %q, want %q", tc.h, tc.m, got, tc.want)
		}
	}
}

func TestPhraseWordsStartWithItIs(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			w := PhraseWords(h, m)
			if len(w) < 3 || w[0] != "it" || w[1] != "is" {
				t.Fatalf("%02d:%02d: %q", h, m, w)
			}
			if strings.Join(w, " ") != ApproxTime(h, m) {
				t.Fatalf("%02d:%02d: words do not rebuild the phrase", h, m)
			}
		}
	}
}
