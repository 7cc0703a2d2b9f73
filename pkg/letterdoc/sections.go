package letterdoc

import (
	"sort"

	"github.com/google/uuid"
)

// Section is one editable paragraph unit of a letter. ID is the
// backend association id ("" until persisted); FrontEndID is the
// stable client-side identity assigned once on load. A deleted section
// becomes a tombstone (Destroy=true) instead of being spliced out, so
// its backend association can still be destroyed on save.
type Section struct {
	ID         string
	FrontEndID string
	Text       string
	Order      int
	Locked     bool
	Destroy    bool
}

// SectionPayload is one entry of the save payload. Tombstones carry a
// null Text and Destroy=1 while keeping their backend id.
type SectionPayload struct {
	ID      *string `json:"id"`
	Text    *string `json:"text"`
	Order   int     `json:"order"`
	Locked  bool    `json:"locked"`
	Destroy *int    `json:"_destroy,omitempty"`
}

// SectionList is the ordered collection of a letter's sections.
type SectionList struct {
	sections []*Section
}

// NewSectionList adopts loaded sections, assigning any missing
// FrontEndID from the persisted id (or freshly when the section is
// new).
func NewSectionList(in []Section) *SectionList {
	l := &SectionList{}
	for i := range in {
		s := in[i]
		if s.FrontEndID == "" {
			if s.ID != "" {
				s.FrontEndID = s.ID
			} else {
				s.FrontEndID = uuid.NewString()
			}
		}
		l.sections = append(l.sections, &s)
	}
	l.sortByOrder()
	return l
}

func (l *SectionList) sortByOrder() {
	sort.SliceStable(l.sections, func(i, j int) bool {
		return l.sections[i].Order < l.sections[j].Order
	})
}

// Visible returns the non-tombstoned sections in ascending order. This
// is the editable, rendered set.
func (l *SectionList) Visible() []*Section {
	l.sortByOrder()
	var out []*Section
	for _, s := range l.sections {
		if !s.Destroy {
			out = append(out, s)
		}
	}
	return out
}

// All returns every section including tombstones.
func (l *SectionList) All() []*Section {
	l.sortByOrder()
	return append([]*Section(nil), l.sections...)
}

// Find returns the section with the given front-end id, or nil.
func (l *SectionList) Find(frontEndID string) *Section {
	for _, s := range l.sections {
		if s.FrontEndID == frontEndID {
			return s
		}
	}
	return nil
}

// Add appends a new unlocked, empty, unpersisted section after the
// current last visible section.
func (l *SectionList) Add() *Section {
	order := 0
	for _, s := range l.sections {
		if !s.Destroy && s.Order >= order {
			order = s.Order + 1
		}
	}
	s := &Section{
		FrontEndID: uuid.NewString(),
		Order:      order,
	}
	l.sections = append(l.sections, s)
	return s
}

// Delete tombstones the target section. It disappears from the visible
// set but stays in memory so the save payload can carry its backend id
// with the destroy flag.
func (l *SectionList) Delete(frontEndID string) bool {
	s := l.Find(frontEndID)
	if s == nil || s.Destroy {
		return false
	}
	s.Destroy = true
	return true
}

// MoveDirection is the only supported reorder: swapping with an
// immediate neighbor.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// Move swaps the section with its neighbor in display order. Returns
// false at the edges or for unknown/tombstoned sections.
func (l *SectionList) Move(frontEndID string, dir MoveDirection) bool {
	visible := l.Visible()
	idx := -1
	for i, s := range visible {
		if s.FrontEndID == frontEndID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	var other int
	switch dir {
	case MoveUp:
		other = idx - 1
	case MoveDown:
		other = idx + 1
	default:
		return false
	}
	if other < 0 || other >= len(visible) {
		return false
	}

	visible[idx].Order, visible[other].Order = visible[other].Order, visible[idx].Order
	l.sortByOrder()
	return true
}

// ExportPayload builds the save payload. contents maps front-end ids
// to the current editor HTML of each visible section; a missing entry
// falls back to the section's loaded text. Visible sections are
// positioned by array index (the index becomes the new order);
// tombstones follow with null text, their backend id, and Destroy=1.
// Never-persisted tombstones are dropped entirely since there is no
// backend association to destroy.
func (l *SectionList) ExportPayload(contents map[string]string) []SectionPayload {
	var out []SectionPayload

	for i, s := range l.Visible() {
		text := s.Text
		if v, ok := contents[s.FrontEndID]; ok {
			text = v
		}
		t := text
		p := SectionPayload{Text: &t, Order: i, Locked: s.Locked}
		if s.ID != "" {
			id := s.ID
			p.ID = &id
		}
		out = append(out, p)
	}

	destroy := 1
	for _, s := range l.sections {
		if !s.Destroy || s.ID == "" {
			continue
		}
		id := s.ID
		out = append(out, SectionPayload{
			ID:      &id,
			Order:   s.Order,
			Locked:  s.Locked,
			Destroy: &destroy,
		})
	}
	return out
}
