// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var (
	directionRef = map[Value]string{
		String("T"): "True direction",
		String("M"): "Magnetic direction",
	}
	resolutionUnit = map[Value]string{
		Short(1): "None",
		Short(2): "Inches",
		Short(3): "Centimeter",
	}
)

// tagDescriptions maps enumerated tag values to their names.
var tagDescriptions = map[Tag]map[Value]string{
	TagOrientation: {
		Short(1): "Horizontal (normal)",
		Short(2): "Mirror horizontal",
		Short(3): "Rotate 180",
		Short(4): "Mirror vertical",
		Short(5): "Mirror horizontal and rotate 270 CW",
		Short(6): "Rotate 90 CW",
		Short(7): "Mirror horizontal and rotate 90 CW",
		Short(8): "Rotate 270 CW",
	},
	TagCompression: {
		Short(1):     "Uncompressed",
		Short(2):     "CCITT 1D",
		Short(3):     "T4/Group 3 Fax",
		Short(4):     "T6/Group 4 Fax",
		Short(5):     "LZW",
		Short(6):     "JPEG (old-style)",
		Short(7):     "JPEG",
		Short(8):     "Adobe Deflate",
		Short(32773): "PackBits",
	},
	TagPhotometricInterpretation: {
		Short(0): "WhiteIsZero",
		Short(1): "BlackIsZero",
		Short(2): "RGB",
		Short(3): "RGB Palette",
		Short(4): "Transparency Mask",
		Short(5): "CMYK",
		Short(6): "YCbCr",
		Short(8): "CIELab",
	},
	TagPlanarConfiguration: {
		Short(1): "Chunky",
		Short(2): "Planar",
	},
	TagResolutionUnit:           resolutionUnit,
	TagFocalPlaneResolutionUnit: resolutionUnit,
	TagYCbCrPositioning: {
		Short(1): "Centered",
		Short(2): "Co-sited",
	},
	TagExposureProgram: {
		Short(0): "Not Defined",
		Short(1): "Manual",
		Short(2): "Program AE",
		Short(3): "Aperture-priority AE",
		Short(4): "Shutter speed priority AE",
		Short(5): "Creative (Slow speed)",
		Short(6): "Action (High speed)",
		Short(7): "Portrait",
		Short(8): "Landscape",
	},
	TagMeteringMode: {
		Short(0):   "Unknown",
		Short(1):   "Average",
		Short(2):   "Center-weighted average",
		Short(3):   "Spot",
		Short(4):   "Multi-spot",
		Short(5):   "Multi-segment",
		Short(6):   "Partial",
		Short(255): "Other",
	},
	TagLightSource: {
		Short(0):   "Unknown",
		Short(1):   "Daylight",
		Short(2):   "Fluorescent",
		Short(3):   "Tungsten (Incandescent)",
		Short(4):   "Flash",
		Short(9):   "Fine Weather",
		Short(10):  "Cloudy",
		Short(11):  "Shade",
		Short(12):  "Daylight Fluorescent",
		Short(13):  "Day White Fluorescent",
		Short(14):  "Cool White Fluorescent",
		Short(15):  "White Fluorescent",
		Short(17):  "Standard Light A",
		Short(18):  "Standard Light B",
		Short(19):  "Standard Light C",
		Short(20):  "D55",
		Short(21):  "D65",
		Short(22):  "D75",
		Short(23):  "D50",
		Short(24):  "ISO Studio Tungsten",
		Short(255): "Other",
	},
	TagFlash: {
		Short(0x00): "No Flash",
		Short(0x01): "Fired",
		Short(0x05): "Fired, Return not detected",
		Short(0x07): "Fired, Return detected",
		Short(0x08): "On, Did not fire",
		Short(0x09): "On, Fired",
		Short(0x0d): "On, Return not detected",
		Short(0x0f): "On, Return detected",
		Short(0x10): "Off, Did not fire",
		Short(0x14): "Off, Did not fire, Return not detected",
		Short(0x18): "Auto, Did not fire",
		Short(0x19): "Auto, Fired",
		Short(0x1d): "Auto, Fired, Return not detected",
		Short(0x1f): "Auto, Fired, Return detected",
		Short(0x20): "No flash function",
		Short(0x41): "Fired, Red-eye reduction",
		Short(0x59): "Auto, Fired, Red-eye reduction",
	},
	TagColorSpace: {
		Short(0x1):    "sRGB",
		Short(0x2):    "Adobe RGB",
		Short(0xffff): "Uncalibrated",
	},
	TagSensingMethod: {
		Short(1): "Not defined",
		Short(2): "One-chip color area",
		Short(3): "Two-chip color area",
		Short(4): "Three-chip color area",
		Short(5): "Color sequential area",
		Short(7): "Trilinear",
		Short(8): "Color sequential linear",
	},
	TagFileSource: {
		Byte(1): "Film Scanner",
		Byte(2): "Reflection Print Scanner",
		Byte(3): "Digital Camera",
	},
	TagSceneType: {
		Byte(1): "Directly photographed",
	},
	TagCustomRendered: {
		Short(0): "Normal",
		Short(1): "Custom",
	},
	TagExposureMode: {
		Short(0): "Auto",
		Short(1): "Manual",
		Short(2): "Auto bracket",
	},
	TagWhiteBalance: {
		Short(0): "Auto",
		Short(1): "Manual",
	},
	TagSceneCaptureType: {
		Short(0): "Standard",
		Short(1): "Landscape",
		Short(2): "Portrait",
		Short(3): "Night",
	},
	TagGainControl: {
		Short(0): "None",
		Short(1): "Low gain up",
		Short(2): "High gain up",
		Short(3): "Low gain down",
		Short(4): "High gain down",
	},
	TagContrast: {
		Short(0): "Normal",
		Short(1): "Low",
		Short(2): "High",
	},
	TagSaturation: {
		Short(0): "Normal",
		Short(1): "Low",
		Short(2): "High",
	},
	TagSharpness: {
		Short(0): "Normal",
		Short(1): "Soft",
		Short(2): "Hard",
	},
	TagSubjectDistanceRange: {
		Short(0): "Unknown",
		Short(1): "Macro",
		Short(2): "Close",
		Short(3): "Distant",
	},
	TagGPSLatitudeRef: {
		String("N"): "North",
		String("S"): "South",
	},
	TagGPSLongitudeRef: {
		String("E"): "East",
		String("W"): "West",
	},
	TagGPSAltitudeRef: {
		Byte(0): "Above sea level",
		Byte(1): "Below sea level",
	},
	TagGPSStatus: {
		String("A"): "Measurement in progress",
		String("V"): "Measurement interrupted",
	},
	TagGPSMeasureMode: {
		String("2"): "2-Dimensional",
		String("3"): "3-Dimensional",
	},
	TagGPSSpeedRef: {
		String("K"): "km/h",
		String("M"): "mph",
		String("N"): "knots",
	},
	TagGPSTrackRef:        directionRef,
	TagGPSImgDirectionRef: directionRef,
	TagGPSDestBearingRef:  directionRef,
	TagGPSDestDistanceRef: {
		String("K"): "Kilometers",
		String("M"): "Miles",
		String("N"): "Nautical Miles",
	},
	TagGPSDifferential: {
		Short(0): "No Correction",
		Short(1): "Differential Corrected",
	},
}

var (
	userCommentASCII   = []byte("ASCII\x00\x00\x00")
	userCommentUnicode = []byte("UNICODE\x00")
)

// describe returns the text form of tags with a special rendition.
func describe(tag Tag, val Value) (string, bool) {
	switch tag {
	case TagXPTitle, TagXPComment, TagXPAuthor, TagXPKeywords, TagXPSubject:
		if b, ok := val.(Bytes); ok {
			return decodeUTF16LE(b), true
		}
	case TagUserComment:
		if b, ok := val.(Bytes); ok {
			return decodeUserComment(b), true
		}
	}

	if val.IsArray() {
		return "", false
	}
	if m, ok := tagDescriptions[tag]; ok {
		if s, ok := m[val]; ok {
			return s, true
		}
	}
	return "", false
}

func decodeUTF16LE(b []byte) string {
	s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(s), "\x00")
}

func decodeUserComment(b []byte) string {
	switch {
	case bytes.HasPrefix(b, userCommentASCII):
		return printableString(string(trimBytesNulls(b[len(userCommentASCII):])))
	case bytes.HasPrefix(b, userCommentUnicode):
		s, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(b[len(userCommentUnicode):])
		if err != nil {
			return ""
		}
		return printableString(string(s))
	default:
		return printableString(string(trimBytesNulls(b)))
	}
}
