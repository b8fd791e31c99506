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

// CMYToRGB converts CMY fractions to 8-bit RGB channels.
// Each channel is (1 - fraction) * 255, rounded half up.
func CMYToRGB(c, m, y float64) (r, g, b uint8) {
	r = toByte(1 - clamp01(c))
	g = toByte(1 - clamp01(m))
	b = toByte(1 - clamp01(y))
	return r, g, b
}

// RGBToCMY converts 8-bit RGB channels to CMY fractions.
func RGBToCMY(r, g, b uint8) (c, m, y float64) {
	c = 1 - float64(r)/255
	m = 1 - float64(g)/255
	y = 1 - float64(b)/255
	return c, m, y
}
