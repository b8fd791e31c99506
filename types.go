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

// RGB is a colour given by 8-bit red, green and blue channels.
type RGB struct {
	R, G, B uint8
}

// CMY is a colour in the subtractive CMY model.
// The fields are fractions in the range from 0 to 1.
type CMY struct {
	C, M, Y float64
}

// CMYK is a colour in the CMYK model.
// The fields are fractions in the range from 0 to 1.
type CMYK struct {
	C, M, Y, K float64
}

// HSV is a colour in the cylindrical HSV model.
//
// H is the hue angle in degrees, in the range from 0 to 360.  The values 0
// and 360 describe the same colour.  S and V are the saturation and value,
// in the range from 0 to 1.
type HSV struct {
	H, S, V float64
}

// CMY returns the colour in the CMY model.
func (c RGB) CMY() CMY {
	cc, m, y := RGBToCMY(c.R, c.G, c.B)
	return CMY{C: cc, M: m, Y: y}
}

// CMYK returns the colour in the CMYK model.
func (c RGB) CMYK() CMYK {
	cc, m, y, k := RGBToCMYK(c.R, c.G, c.B)
	return CMYK{C: cc, M: m, Y: y, K: k}
}

// HSV returns the colour in the HSV model.
func (c RGB) HSV() HSV {
	h, s, v := RGBToHSV(c.R, c.G, c.B)
	return HSV{H: h, S: s, V: v}
}

// RGB returns the colour as 8-bit RGB values.
func (c CMY) RGB() RGB {
	r, g, b := CMYToRGB(c.C, c.M, c.Y)
	return RGB{R: r, G: g, B: b}
}

// CMYK separates the black component from the colour.
func (c CMY) CMYK() CMYK {
	cc, m, y, k := CMYToCMYK(c.C, c.M, c.Y)
	return CMYK{C: cc, M: m, Y: y, K: k}
}

// CMY folds the black component back into the chromatic channels.
func (c CMYK) CMY() CMY {
	cc, m, y := CMYKToCMY(c.C, c.M, c.Y, c.K)
	return CMY{C: cc, M: m, Y: y}
}

// RGB returns the colour as 8-bit RGB values.
func (c CMYK) RGB() RGB {
	r, g, b := CMYKToRGB(c.C, c.M, c.Y, c.K)
	return RGB{R: r, G: g, B: b}
}

// RGB returns the colour as 8-bit RGB values.
func (c HSV) RGB() RGB {
	r, g, b := HSVToRGB(c.H, c.S, c.V)
	return RGB{R: r, G: g, B: b}
}
