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

// CMYToCMYK separates the black component from a CMY colour.
//
// The key is k = min(c, m, y) and the remaining chromatic parts are rescaled
// by 1/(1-k).  For pure black (k == 1) the rescaling is undefined, and the
// chromatic parts are returned as 0.
func CMYToCMYK(c, m, y float64) (c2, m2, y2, k float64) {
	c = clamp01(c)
	m = clamp01(m)
	y = clamp01(y)

	k = math.Min(math.Min(c, m), y)
	if k >= 1 {
		return 0, 0, 0, 1
	}

	c2 = clamp01((c - k) / (1 - k))
	m2 = clamp01((m - k) / (1 - k))
	y2 = clamp01((y - k) / (1 - k))
	return c2, m2, y2, k
}

// CMYKToCMY folds the black component of a CMYK colour back into the
// cyan, magenta and yellow channels.
func CMYKToCMY(c, m, y, k float64) (c2, m2, y2 float64) {
	c = clamp01(c)
	m = clamp01(m)
	y = clamp01(y)
	k = clamp01(k)

	c2 = math.Min(1, c*(1-k)+k)
	m2 = math.Min(1, m*(1-k)+k)
	y2 = math.Min(1, y*(1-k)+k)
	return c2, m2, y2
}

// CMYKToRGB converts a CMYK colour to 8-bit RGB channels.
func CMYKToRGB(c, m, y, k float64) (r, g, b uint8) {
	return CMYToRGB(CMYKToCMY(c, m, y, k))
}

// RGBToCMYK converts 8-bit RGB channels to a CMYK colour.
func RGBToCMYK(r, g, b uint8) (c, m, y, k float64) {
	return CMYToCMYK(RGBToCMY(r, g, b))
}
