package letterdoc

import (
	"testing"
)

func loadedSections() *SectionList {
	return NewSectionList([]Section{
		{ID: "s1", Text: "<p>first</p>", Order: 0, Locked: true},
		{ID: "s2", Text: "<p>second</p>", Order: 1},
		{ID: "s3", Text: "<p>third</p>", Order: 2},
	})
}

func TestNewSectionListAssignsFrontEndIDs(t *testing.T) {
	l := NewSectionList([]Section{
		{ID: "persisted", Order: 0},
		{Order: 1},
	})

	all := l.All()
	if all[0].FrontEndID != "persisted" {
		t.Errorf("persisted FrontEndID = %q, want backend id", all[0].FrontEndID)
	}
	if all[1].FrontEndID == "" {
		t.Error("new section got no FrontEndID")
	}
}

func TestSectionListOrdering(t *testing.T) {
	l := NewSectionList([]Section{
		{ID: "b", Order: 5},
		{ID: "a", Order: 1},
	})
	vis := l.Visible()
	if vis[0].ID != "a" || vis[1].ID != "b" {
		t.Errorf("visible order = [%s %s], want [a b]", vis[0].ID, vis[1].ID)
	}
}

func TestSectionListAdd(t *testing.T) {
	l := loadedSections()
	s := l.Add()

	if s.ID != "" {
		t.Errorf("new section ID = %q, want empty", s.ID)
	}
	if s.Locked {
		t.Error("new section is locked")
	}
	if s.Order != 3 {
		t.Errorf("new section Order = %d, want 3", s.Order)
	}
	if got := len(l.Visible()); got != 4 {
		t.Errorf("visible count = %d, want 4", got)
	}
}

func TestSectionListDeleteTombstones(t *testing.T) {
	l := loadedSections()
	if !l.Delete("s2") {
		t.Fatal("Delete returned false")
	}
	if l.Delete("s2") {
		t.Error("second Delete returned true")
	}

	if got := len(l.Visible()); got != 2 {
		t.Errorf("visible count = %d, want 2", got)
	}
	if got := len(l.All()); got != 3 {
		t.Errorf("all count = %d, want 3 (tombstone kept)", got)
	}
}

func TestSectionListMove(t *testing.T) {
	l := loadedSections()

	if !l.Move("s2", MoveUp) {
		t.Fatal("MoveUp returned false")
	}
	vis := l.Visible()
	if vis[0].ID != "s2" || vis[1].ID != "s1" {
		t.Errorf("order after MoveUp = [%s %s %s]", vis[0].ID, vis[1].ID, vis[2].ID)
	}

	if l.Move("s2", MoveUp) {
		t.Error("MoveUp at top returned true")
	}
	if l.Move("s3", MoveDown) {
		t.Error("MoveDown at bottom returned true")
	}
	if l.Move("missing", MoveUp) {
		t.Error("Move of unknown section returned true")
	}
}

func TestExportPayload(t *testing.T) {
	l := loadedSections()
	l.Delete("s2")
	added := l.Add()

	payload := l.ExportPayload(map[string]string{
		added.FrontEndID: "<p>new text</p>",
		"s1":             "<p>edited first</p>",
	})

	// Three visible entries then one tombstone.
	if len(payload) != 4 {
		t.Fatalf("payload length = %d, want 4", len(payload))
	}

	for i := 0; i < 3; i++ {
		if payload[i].Order != i {
			t.Errorf("payload[%d].Order = %d, want index %d", i, payload[i].Order, i)
		}
		if payload[i].Destroy != nil {
			t.Errorf("payload[%d] unexpectedly tombstoned", i)
		}
	}

	if payload[0].ID == nil || *payload[0].ID != "s1" {
		t.Error("payload[0] missing backend id s1")
	}
	if *payload[0].Text != "<p>edited first</p>" {
		t.Errorf("payload[0].Text = %q, want edited content", *payload[0].Text)
	}
	if !payload[0].Locked {
		t.Error("payload[0] lost locked flag")
	}

	if payload[2].ID != nil {
		t.Error("new section carried a backend id")
	}
	if *payload[2].Text != "<p>new text</p>" {
		t.Errorf("payload[2].Text = %q, want editor content", *payload[2].Text)
	}

	tomb := payload[3]
	if tomb.ID == nil || *tomb.ID != "s2" {
		t.Fatal("tombstone missing backend id s2")
	}
	if tomb.Destroy == nil || *tomb.Destroy != 1 {
		t.Error("tombstone missing _destroy=1")
	}
	if tomb.Text != nil {
		t.Errorf("tombstone Text = %q, want nil", *tomb.Text)
	}
}

func TestExportPayloadDropsNeverPersistedTombstones(t *testing.T) {
	l := loadedSections()
	added := l.Add()
	l.Delete(added.FrontEndID)

	payload := l.ExportPayload(nil)
	if len(payload) != 3 {
		t.Fatalf("payload length = %d, want 3", len(payload))
	}
	for _, p := range payload {
		if p.Destroy != nil {
			t.Error("never-persisted tombstone leaked into payload")
		}
	}
}
