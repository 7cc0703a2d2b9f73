// Package barcode renders CODE39 barcodes as base64 PNG data URLs for
// embedding directly into letter HTML.
package barcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code39"
)

// Default raster dimensions for letter-embedded barcodes.
const (
	DefaultWidth  = 400
	DefaultHeight = 60
)

const dataURLPrefix = "data:image/png;base64,"

// DataURL encodes text as a CODE39 barcode and returns it as a PNG
// data URL. Empty input yields an empty string so decorator tokens can
// fall back to their placeholder text.
func DataURL(text string, width, height int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	// CODE39 alphabet is uppercase; full-ASCII mode covers the rest.
	code, err := code39.Encode(strings.ToUpper(text), false, true)
	if err != nil {
		return "", err
	}

	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// IsDataURL reports whether s looks like a PNG data URL produced by
// this package.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, dataURLPrefix)
}
