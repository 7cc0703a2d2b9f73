package grammar

import (
	"strings"
	"testing"
)

func TestAnnotate(t *testing.T) {
	content := "Ths sentence has a eror."
	errs := []CheckError{
		{
			ID:            "1",
			StartPosition: 0,
			EndPosition:   3,
			Type:          SpellingRule,
		},
		{
			ID:            "2",
			StartPosition: 19,
			EndPosition:   23,
			Type:          "GRAMMAR_AGREEMENT",
		},
	}

	out := Annotate(content, errs)

	if !strings.Contains(out, `<span id="error-1" class="spelling-error">Ths</span>`) {
		t.Errorf("missing spelling annotation: %q", out)
	}
	if !strings.Contains(out, `<span id="error-2" class="grammar-error">eror</span>`) {
		t.Errorf("missing grammar annotation: %q", out)
	}
}

func TestAnnotateReverseOffsetOrder(t *testing.T) {
	// Findings arrive in ascending order; insertion must happen from the
	// end so earlier offsets stay valid.
	content := "aaa bbb ccc"
	errs := []CheckError{
		{ID: "1", StartPosition: 0, EndPosition: 3, Type: SpellingRule},
		{ID: "2", StartPosition: 4, EndPosition: 7, Type: SpellingRule},
		{ID: "3", StartPosition: 8, EndPosition: 11, Type: SpellingRule},
	}

	out := Annotate(content, errs)
	for _, want := range []string{
		`<span id="error-1" class="spelling-error">aaa</span>`,
		`<span id="error-2" class="spelling-error">bbb</span>`,
		`<span id="error-3" class="spelling-error">ccc</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestAnnotateCharacterOffsets(t *testing.T) {
	// The checker counts characters; é is two bytes, so byte slicing
	// would wrap " ts" instead of "tst".
	content := "café tst here"
	errs := []CheckError{
		{ID: "1", StartPosition: 5, EndPosition: 8, Type: SpellingRule},
	}

	out := Annotate(content, errs)
	if !strings.Contains(out, `<span id="error-1" class="spelling-error">tst</span>`) {
		t.Errorf("annotation not on character boundaries: %q", out)
	}
	if !strings.HasPrefix(out, "café ") {
		t.Errorf("text before annotation corrupted: %q", out)
	}
}

func TestAnnotateSkipsInvalidOffsets(t *testing.T) {
	content := "short"
	errs := []CheckError{
		{ID: "1", StartPosition: -1, EndPosition: 3},
		{ID: "2", StartPosition: 2, EndPosition: 100},
		{ID: "3", StartPosition: 4, EndPosition: 4},
	}
	if out := Annotate(content, errs); out != content {
		t.Errorf("Annotate = %q, want unmodified content", out)
	}
}

func TestStripAnnotations(t *testing.T) {
	content := "Ths sentence has a eror."
	errs := []CheckError{
		{ID: "1", StartPosition: 0, EndPosition: 3, Type: SpellingRule},
		{ID: "2", StartPosition: 19, EndPosition: 23, Type: "GRAMMAR_AGREEMENT"},
	}

	annotated := Annotate(content, errs)
	stripped, err := StripAnnotations(annotated)
	if err != nil {
		t.Fatal(err)
	}
	if stripped != content {
		t.Errorf("StripAnnotations = %q, want %q", stripped, content)
	}
}

func TestStripAnnotationsKeepsVariableSpans(t *testing.T) {
	content := `<span data-lexical-custom-node-type="receipt-number" data-receipt-number="IOE1">IOE1</span> has a <span id="error-1" class="grammar-error">eror</span>`
	stripped, err := StripAnnotations(content)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stripped, `data-lexical-custom-node-type="receipt-number"`) {
		t.Errorf("variable span lost: %q", stripped)
	}
	if strings.Contains(stripped, "grammar-error") {
		t.Errorf("annotation span survived: %q", stripped)
	}
	if !strings.Contains(stripped, "eror") {
		t.Errorf("wrapped text lost: %q", stripped)
	}
}

func TestStripAnnotationsPreservesEntities(t *testing.T) {
	content := "one&nbsp;two &amp; three <span id=\"error-1\" class=\"spelling-error\">wrng</span>"
	stripped, err := StripAnnotations(content)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stripped, "one&nbsp;two") {
		t.Errorf("&nbsp; not preserved: %q", stripped)
	}
	if !strings.Contains(stripped, "&amp;") {
		t.Errorf("&amp; not preserved: %q", stripped)
	}
}

func TestAnnotateStripIdempotence(t *testing.T) {
	content := "<p>Ths is a test&nbsp;sentence.</p>"
	stripped, err := StripAnnotations(content)
	if err != nil {
		t.Fatal(err)
	}
	if stripped != content {
		t.Fatalf("stripping clean content changed it: %q", stripped)
	}

	errs := []CheckError{{ID: "1", StartPosition: 3, EndPosition: 6, Type: SpellingRule}}
	annotated := Annotate(stripped, errs)
	back, err := StripAnnotations(annotated)
	if err != nil {
		t.Fatal(err)
	}
	if back != content {
		t.Errorf("annotate/strip cycle changed content: %q, want %q", back, content)
	}
}

func TestAcceptSuggestion(t *testing.T) {
	content := `This is <span id="error-1" class="spelling-error">wrng</span> here.`
	out, err := AcceptSuggestion(content, "error-1", "wrong")
	if err != nil {
		t.Fatal(err)
	}
	want := "This is wrong here."
	if out != want {
		t.Errorf("AcceptSuggestion = %q, want %q", out, want)
	}
}

func TestAcceptSuggestionUnknownElement(t *testing.T) {
	content := `This is <span id="error-1" class="spelling-error">wrng</span> here.`
	out, err := AcceptSuggestion(content, "error-404", "x")
	if err != nil {
		t.Fatal(err)
	}
	if out != content {
		t.Errorf("AcceptSuggestion = %q, want unmodified content", out)
	}
}

func TestElementID(t *testing.T) {
	if got := ElementID("abc"); got != "error-abc" {
		t.Errorf("ElementID = %q, want error-abc", got)
	}
}
