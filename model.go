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
)

// Models for the colour types in this package.  The models convert any
// [color.Color] by first reducing it to 8-bit RGB.  Alpha is discarded.
var (
	RGBModel  color.Model = color.ModelFunc(rgbModel)
	CMYModel  color.Model = color.ModelFunc(cmyModel)
	CMYKModel color.Model = color.ModelFunc(cmykModel)
	HSVModel  color.Model = color.ModelFunc(hsvModel)
)

// FromColor converts a standard library colour to 8-bit RGB.
// Premultiplied colours are converted back to straight alpha first, and the
// alpha channel is then dropped.  A fully transparent colour maps to black.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	if a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return RGB{
		R: toByte(float64(r) / 0xffff),
		G: toByte(float64(g) / 0xffff),
		B: toByte(float64(b) / 0xffff),
	}
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return toUint32(c.R), toUint32(c.G), toUint32(c.B), 0xffff
}

// RGBA implements the [color.Color] interface.
func (c CMY) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGBA implements the [color.Color] interface.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGBA implements the [color.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

func rgbModel(c color.Color) color.Color {
	return FromColor(c)
}

func cmyModel(c color.Color) color.Color {
	if cmy, ok := c.(CMY); ok {
		return cmy
	}
	return FromColor(c).CMY()
}

func cmykModel(c color.Color) color.Color {
	switch c := c.(type) {
	case CMYK:
		return c
	case CMY:
		return c.CMYK()
	}
	return FromColor(c).CMYK()
}

func hsvModel(c color.Color) color.Color {
	if hsv, ok := c.(HSV); ok {
		return hsv
	}
	return FromColor(c).HSV()
}
