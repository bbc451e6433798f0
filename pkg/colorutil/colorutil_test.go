package colorutil

import (
	"image/color"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	colors := []color.RGBA{Black, White, Red, Green, Blue, Orange, Purple, Border}
	for _, c := range colors {
		hex := ToHex(c)
		got := FromHex(hex)
		if !Equal(got, c) {
			t.Errorf("FromHex(ToHex(%v)) = %v", c, got)
		}
	}
}

func TestFromHexMalformed(t *testing.T) {
	inputs := []string{"", "#", "fff", "#gggggg", "red"}
	for _, in := range inputs {
		if got := FromHex(in); !Equal(got, Black) {
			t.Errorf("FromHex(%q) = %v, want black", in, got)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Red, Red) {
		t.Error("Equal(Red, Red) = false")
	}
	if Equal(Red, Blue) {
		t.Error("Equal(Red, Blue) = true")
	}
}
