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

import "math"

// HSVToRGB converts an HSV colour to 8-bit RGB channels.
//
// The hue h is given in degrees and is reduced modulo 360, so that 0 and 360
// give the same result.  The saturation s and the value v are clamped to
// the range [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = normHue(h)
	s = clamp01(s)
	v = clamp01(v)

	hex := h / 60
	i := math.Floor(hex)
	frac := hex - i

	p := (1 - s) * v
	q := (1 - s*frac) * v
	t := (1 - s*(1-frac)) * v

	var fR, fG, fB float64
	switch int(i) % 6 {
	case 0:
		fR, fG, fB = v, t, p
	case 1:
		fR, fG, fB = q, v, p
	case 2:
		fR, fG, fB = p, v, t
	case 3:
		fR, fG, fB = p, q, v
	case 4:
		fR, fG, fB = t, p, v
	case 5:
		fR, fG, fB = v, p, q
	}

	return toByte(fR), toByte(fG), toByte(fB)
}

// RGBToHSV converts 8-bit RGB channels to an HSV colour.
//
// For achromatic colours (black, white and the greys in between) the hue is
// undefined and is returned as 0.  The returned hue is in the range [0, 360).
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	maxC := max(r, g, b)
	minC := min(r, g, b)

	max2 := float64(maxC) / 255
	min2 := float64(minC) / 255

	v = max2
	if max2 < 0.0001 {
		s = 0
	} else {
		s = (max2 - min2) / max2
	}

	if s*100 < 0.1 {
		return 0, s, v
	}

	r2 := float64(r) / 255
	g2 := float64(g) / 255
	b2 := float64(b) / 255
	d := max2 - min2

	// The hue is first computed in units of 60 degrees.  Ties between the
	// extreme and the middle channel are decided by the order of the cases.
	switch {
	case r == maxC && g == minC:
		h = 5 + (max2-b2)/d
	case r == maxC:
		h = 1 - (max2-g2)/d
	case g == maxC && b == minC:
		h = (max2-r2)/d + 1
	case g == maxC:
		h = 3 - (max2-b2)/d
	case r == minC:
		h = 3 + (max2-g2)/d
	default:
		h = 5 - (max2-r2)/d
	}

	h = math.Min(h*60, 360)
	if h >= 360 {
		h = 0
	}
	return h, s, v
}
