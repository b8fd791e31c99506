// seehuhn.de/go/colorconv - conversions between RGB, CMY, CMYK and HSV
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorconv

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

// The following types implement the color.Color interface.
var (
	_ color.Color = RGB{}
	_ color.Color = CMY{}
	_ color.Color = CMYK{}
	_ color.Color = HSV{}
)

func TestRGBModelNamedColors(t *testing.T) {
	names := []string{
		"black", "white", "red", "lime", "blue", "crimson", "teal",
		"goldenrod", "slategray", "papayawhip",
	}
	for _, name := range names {
		c, ok := colornames.Map[name]
		if !ok {
			t.Fatalf("missing colour name %q", name)
		}
		want := RGB{c.R, c.G, c.B}
		if got := RGBModel.Convert(c); got != want {
			t.Errorf("RGBModel.Convert(%s) = %v, want %v", name, got, want)
		}

		r1, g1, b1, a1 := c.RGBA()
		r2, g2, b2, a2 := want.RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
			t.Errorf("%s: RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				name, r2, g2, b2, a2, r1, g1, b1, a1)
		}
	}
}

func TestModelsPrimaries(t *testing.T) {
	cases := []struct {
		in   color.Color
		hsv  HSV
		cmyk CMYK
	}{
		{colornames.Red, HSV{0, 1, 1}, CMYK{0, 1, 1, 0}},
		{colornames.Yellow, HSV{60, 1, 1}, CMYK{0, 0, 1, 0}},
		{colornames.Lime, HSV{120, 1, 1}, CMYK{1, 0, 1, 0}},
		{colornames.Cyan, HSV{180, 1, 1}, CMYK{1, 0, 0, 0}},
		{colornames.Blue, HSV{240, 1, 1}, CMYK{1, 1, 0, 0}},
		{colornames.Magenta, HSV{300, 1, 1}, CMYK{0, 1, 0, 0}},
		{colornames.Black, HSV{0, 0, 0}, CMYK{0, 0, 0, 1}},
		{colornames.White, HSV{0, 0, 1}, CMYK{0, 0, 0, 0}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.hsv, HSVModel.Convert(c.in), approx); d != "" {
			t.Errorf("HSVModel.Convert(%v) (-want +got):\n%s", c.in, d)
		}
		if d := cmp.Diff(c.cmyk, CMYKModel.Convert(c.in), approx); d != "" {
			t.Errorf("CMYKModel.Convert(%v) (-want +got):\n%s", c.in, d)
		}
	}
}

func TestModelsKeepOwnType(t *testing.T) {
	cmy := CMY{0.1, 0.2, 0.3}
	if got := CMYModel.Convert(cmy); got != cmy {
		t.Errorf("CMYModel.Convert(%v) = %v", cmy, got)
	}
	cmyk := CMYK{0.1, 0.2, 0.3, 0.4}
	if got := CMYKModel.Convert(cmyk); got != cmyk {
		t.Errorf("CMYKModel.Convert(%v) = %v", cmyk, got)
	}
	if got := CMYKModel.Convert(cmy); got != cmy.CMYK() {
		t.Errorf("CMYKModel.Convert(%v) = %v, want %v", cmy, got, cmy.CMYK())
	}
	hsv := HSV{200, 0.5, 0.25}
	if got := HSVModel.Convert(hsv); got != hsv {
		t.Errorf("HSVModel.Convert(%v) = %v", hsv, got)
	}
}

func TestFromColor(t *testing.T) {
	cases := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"opaque", color.NRGBA{R: 10, G: 20, B: 30, A: 255}, RGB{10, 20, 30}},
		{"transparent", color.NRGBA{R: 10, G: 20, B: 30, A: 0}, RGB{}},
		{"premultiplied", color.RGBA{R: 0x80, G: 0x40, B: 0, A: 0x80}, RGB{255, 127, 0}},
		{"gray16", color.Gray16{Y: 0x8080}, RGB{128, 128, 128}},
		{"cmyk", color.CMYK{C: 0, M: 255, Y: 255, K: 0}, RGB{255, 0, 0}},
		{"hsv", HSV{120, 1, 1}, RGB{0, 255, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FromColor(c.in); got != c.want {
				t.Errorf("FromColor(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestConvertedColorsRender(t *testing.T) {
	// Colours from this package must look the same to image/color.
	for _, c := range []color.Color{
		CMY{0.5, 0.5, 0.5},
		CMYK{0, 0, 0, 0.5},
		HSV{0, 0, 128.0 / 255},
	} {
		got := color.NRGBAModel.Convert(c).(color.NRGBA)
		want := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
		if got != want {
			t.Errorf("%T %v renders as %v, want %v", c, c, got, want)
		}
	}
}
