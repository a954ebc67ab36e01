package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourNext(t *testing.T) {
	tests := []struct {
		name string
		in   Colour
		want Colour
	}{
		{name: "red to green", in: ColourRed, want: ColourGreen},
		{name: "green to blue", in: ColourGreen, want: ColourBlue},
		{name: "blue to yellow", in: ColourBlue, want: ColourYellow},
		{name: "yellow to magenta", in: ColourYellow, want: ColourMagenta},
		{name: "magenta to cyan", in: ColourMagenta, want: ColourCyan},
		{name: "cyan to white", in: ColourCyan, want: ColourWhite},
		{name: "white wraps to red", in: ColourWhite, want: ColourRed},
		{name: "out of range restarts at red", in: Colour(99), want: ColourRed},
		{name: "negative restarts at red", in: Colour(-1), want: ColourRed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Next())
		})
	}
}

func TestColourCycleReturnsToStart(t *testing.T) {
	c := ColourRed
	for i := 0; i < 7; i++ {
		c = c.Next()
	}
	assert.Equal(t, ColourRed, c)
}

func TestColourLevels(t *testing.T) {
	tests := []struct {
		colour Colour
		red    bool
		green  bool
		blue   bool
	}{
		{colour: ColourRed, red: true},
		{colour: ColourGreen, green: true},
		{colour: ColourBlue, blue: true},
		{colour: ColourYellow, red: true, green: true},
		{colour: ColourMagenta, red: true, blue: true},
		{colour: ColourCyan, green: true, blue: true},
		{colour: ColourWhite, red: true, green: true, blue: true},
	}

	for _, tc := range tests {
		t.Run(tc.colour.String(), func(t *testing.T) {
			red, green, blue := tc.colour.Levels()
			assert.Equal(t, tc.red, red)
			assert.Equal(t, tc.green, green)
			assert.Equal(t, tc.blue, blue)
		})
	}
}

func TestColourLevelsAreDistinct(t *testing.T) {
	seen := map[[3]bool]Colour{}
	for c := ColourRed; c < colourCount; c++ {
		red, green, blue := c.Levels()
		triple := [3]bool{red, green, blue}
		previous, ok := seen[triple]
		assert.False(t, ok, "%s and %s share the same levels", previous, c)
		seen[triple] = c
	}
}

func TestColourLevelsUnknownFallsBackToRed(t *testing.T) {
	red, green, blue := Colour(99).Levels()
	assert.True(t, red)
	assert.False(t, green)
	assert.False(t, blue)
}

func TestModeToggle(t *testing.T) {
	assert.Equal(t, ModeManual, ModeAuto.Toggle())
	assert.Equal(t, ModeAuto, ModeManual.Toggle())
	// repeated toggles alternate
	assert.Equal(t, ModeAuto, ModeAuto.Toggle().Toggle())
	// anything unknown toggles back to a safe default
	assert.Equal(t, ModeAuto, Mode(99).Toggle())
}
