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

// clamp01 restricts v to the range [0, 1].  NaN is mapped to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toByte converts a fraction in [0, 1] to an 8-bit channel, rounding half up.
func toByte(v float64) uint8 {
	return uint8(math.Floor(clamp01(v)*255 + 0.5))
}

// toUint32 widens an 8-bit channel to the 16-bit range used by image/color.
func toUint32(x uint8) uint32 {
	return uint32(x) * 0x101
}

// normHue reduces a hue angle to the range [0, 360).
// NaN and infinite angles are mapped to 0.
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if math.IsNaN(h) {
		return 0
	}
	if h < 0 {
		h += 360
		if h >= 360 {
			// a tiny negative angle can round up to a full turn
			h = 0
		}
	}
	return h
}
