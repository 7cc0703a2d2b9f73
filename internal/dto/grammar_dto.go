package dto

type GrammarCheckContent struct {
	ContentId string `json:"content_id" validate:"required"`
	Html      string `json:"html"`
}

type GrammarCheckRequest struct {
	Contents []GrammarCheckContent `json:"contents" validate:"required,min=1,dive"`
}

type GrammarErrorResponse struct {
	Id            string   `json:"id"`
	ElementId     string   `json:"element_id"`
	Suggestions   []string `json:"suggestions"`
	StartPosition int      `json:"startPosition"`
	EndPosition   int      `json:"endPosition"`
	Message       string   `json:"message"`
	Type          string   `json:"type"`
}

type GrammarCheckResult struct {
	ContentId string                 `json:"content_id"`
	Html      string                 `json:"html"`
	Errors    []GrammarErrorResponse `json:"errors"`
}

type GrammarCheckResponse struct {
	// Checked is false when the checker was unreachable; contents are
	// returned unmodified in that case.
	Checked bool                 `json:"checked"`
	Results []GrammarCheckResult `json:"results"`
}

type AcceptSuggestionRequest struct {
	Html        string `json:"html" validate:"required"`
	ElementId   string `json:"element_id" validate:"required"`
	Replacement string `json:"replacement"`
}

type AcceptSuggestionResponse struct {
	Html string `json:"html"`
}
