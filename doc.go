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

// Package colorconv converts colour values between the RGB, CMY, CMYK and
// HSV colour models.
//
// The package works with four representations:
//   - [RGB]: red, green and blue as 8-bit channels, 0 to 255
//   - [CMY]: cyan, magenta and yellow as fractions, 0 to 1
//   - [CMYK]: CMY plus a key (black) component, all fractions from 0 to 1
//   - [HSV]: hue in degrees from 0 to 360, saturation and value from 0 to 1
//
// Conversions are available both as free functions on individual channel
// values, e.g. [HSVToRGB], and as methods on the value types, e.g.
// [HSV.RGB].  All functions are pure and safe for concurrent use.
//
// Whenever a fraction is turned into an 8-bit channel, the value is rounded
// half up: the channel is floor(x*255 + 0.5), clamped to the range 0 to 255.
// Inputs outside the documented ranges are clamped, and hue values are
// reduced modulo 360.  No function returns NaN or an infinite value.
//
// All four types implement the [image/color.Color] interface, and the models
// [RGBModel], [CMYModel], [CMYKModel] and [HSVModel] convert arbitrary
// colours from the standard library.
package colorconv
