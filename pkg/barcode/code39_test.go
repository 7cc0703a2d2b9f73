package barcode

import (
	"testing"
)

func TestDataURL(t *testing.T) {
	url, err := DataURL("IOE1234567890", DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	if !IsDataURL(url) {
		t.Errorf("DataURL = %q, want data:image/png;base64 prefix", url[:min(len(url), 40)])
	}
}

func TestDataURLLowercaseInput(t *testing.T) {
	// CODE39 alphabet is uppercase; lowercase input must still encode.
	url, err := DataURL("ioe1234567890", DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	if !IsDataURL(url) {
		t.Error("lowercase input did not produce a data URL")
	}
}

func TestDataURLEmptyInput(t *testing.T) {
	url, err := DataURL("  ", DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	if url != "" {
		t.Errorf("DataURL = %q, want empty for blank input", url)
	}
}
