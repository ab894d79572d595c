package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, thought := range []string{"first", "second", "third"} {
		_, err := s.Record(Entry{
			ThoughtID: "id-" + thought,
			URL:       "https://app.napkin.one/t/" + thought,
			Thought:   thought,
			SentAt:    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record(%q) returned error: %v", thought, err)
		}
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent returned %d entries, want 3", len(entries))
	}
	if entries[0].Thought != "third" || entries[2].Thought != "first" {
		t.Fatalf("Recent order = [%s %s %s], want newest first",
			entries[0].Thought, entries[1].Thought, entries[2].Thought)
	}
	if !entries[0].SentAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("SentAt = %v, want %v", entries[0].SentAt, base.Add(2*time.Minute))
	}
}

func TestStore_RecentOrdersSubsecondTimestamps(t *testing.T) {
	s := openTestStore(t)

	// A whole-second timestamp and a fractional one in the same second. The
	// newer (fractional) entry is inserted first so insertion order can't
	// mask a broken sort on the stored timestamp strings.
	whole := time.Date(2026, 8, 30, 12, 0, 4, 0, time.UTC)
	fractional := whole.Add(500 * time.Millisecond)

	if _, err := s.Record(Entry{Thought: "newer", ThoughtID: "n", URL: "u", SentAt: fractional}); err != nil {
		t.Fatalf("Record(newer) returned error: %v", err)
	}
	if _, err := s.Record(Entry{Thought: "older", ThoughtID: "o", URL: "u", SentAt: whole}); err != nil {
		t.Fatalf("Record(older) returned error: %v", err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(entries))
	}
	if entries[0].Thought != "newer" || entries[1].Thought != "older" {
		t.Fatalf("Recent order = [%s %s], want newest first", entries[0].Thought, entries[1].Thought)
	}
	if !entries[0].SentAt.Equal(fractional) {
		t.Fatalf("SentAt = %v, want %v", entries[0].SentAt, fractional)
	}
}

func TestStore_RecentRespectsLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.Record(Entry{Thought: "t", ThoughtID: "x", URL: "u"}); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(entries))
	}
}

func TestStore_RecordRejectsEmptyThought(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Record(Entry{}); err == nil {
		t.Fatalf("Record with empty thought returned nil error, want error")
	}
}

func TestStore_NilGuards(t *testing.T) {
	var s *Store
	if _, err := s.Record(Entry{Thought: "t"}); err == nil {
		t.Fatalf("Record on nil store returned nil error, want error")
	}
	if _, err := s.Recent(1); err == nil {
		t.Fatalf("Recent on nil store returned nil error, want error")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close on nil store returned error: %v", err)
	}
}
