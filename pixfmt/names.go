// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pixfmt

import "strconv"

func (n NumericRepresentation) String() string {
	switch n {
	case NumericUnspecified:
		return "Unspecified"
	case NumericIndexed:
		return "Indexed"
	case NumericUnsignedInteger:
		return "UnsignedInteger"
	case NumericSignedInteger:
		return "SignedInteger"
	case NumericFixed:
		return "Fixed"
	case NumericFloat:
		return "Float"
	}
	return "NumericRepresentation(" + strconv.Itoa(int(n)) + ")"
}

func (c ColorRepresentation) String() string {
	switch c {
	case ColorUnspecified:
		return "Unspecified"
	case ColorGrey:
		return "Grey"
	case ColorBgr:
		return "Bgr"
	case ColorRgb:
		return "Rgb"
	case ColorCmyk:
		return "Cmyk"
	}
	return "ColorRepresentation(" + strconv.Itoa(int(c)) + ")"
}

func (a AlphaRepresentation) String() string {
	switch a {
	case AlphaNone:
		return "None"
	case AlphaAssociated:
		return "Associated"
	case AlphaUnassociated:
		return "Unassociated"
	}
	return "AlphaRepresentation(" + strconv.Itoa(int(a)) + ")"
}

func (e Encoding) String() string {
	switch e {
	case EncodingUnspecified:
		return "Unspecified"
	case EncodingCompanded:
		return "Companded"
	case EncodingLinear:
		return "Linear"
	case EncodingScRGB:
		return "scRGB"
	}
	return "Encoding(" + strconv.Itoa(int(e)) + ")"
}
