package letterdoc

import (
	"strings"
)

// Constants for the text format bitmask carried by text nodes.
// These mirror the Lexical editor's format flags so stored documents
// keep their inline styling across editor sessions.
const (
	FormatBold          = 1
	FormatItalic        = 2
	FormatStrikethrough = 4
	FormatUnderline     = 8
	FormatCode          = 16
	FormatSubscript     = 32
	FormatSuperscript   = 64
)

// StyleMap represents parsed CSS styles
type StyleMap map[string]string

// ParseStyle parses a CSS style string into a map
// Example: "color: #F97316; background-color: #BFDBFE;"
func ParseStyle(styleStr string) StyleMap {
	styles := make(StyleMap)
	if styleStr == "" {
		return styles
	}

	parts := strings.Split(styleStr, ";")
	for _, part := range parts {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) == 2 {
			k := strings.TrimSpace(kv[0])
			v := strings.TrimSpace(kv[1])
			if k != "" && v != "" {
				styles[k] = v
			}
		}
	}
	return styles
}

// String renders the map back to a style attribute value with stable key order.
func (s StyleMap) String() string {
	// Whitelist keeps exported markup limited to styles the letter renderer understands.
	whitelist := []string{"color", "background-color", "text-transform", "text-align"}

	var parts []string
	for _, k := range whitelist {
		if v, ok := s[k]; ok {
			parts = append(parts, k+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}
