package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	lines := []Announcement{
		{SessionID: "a", Source: "menu", Kind: "ModeChanged", Text: "Main menu.", Forced: true},
		{SessionID: "a", Source: "menu", Kind: "Focus", Text: "Single Player"},
		{SessionID: "b", Source: "build", Kind: "Build", Text: "Build mode on"},
		{SessionID: "a", Source: "menu", Kind: "Focus", Text: "Settings"},
	}
	for _, l := range lines {
		if _, err := store.SaveAnnouncement(l); err != nil {
			t.Fatalf("SaveAnnouncement() failed: %v", err)
		}
	}

	got, err := store.RecentAnnouncements("a", 10)
	if err != nil {
		t.Fatalf("RecentAnnouncements() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 announcements, got %d", len(got))
	}

	want := []string{"Main menu.", "Single Player", "Settings"}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("announcement %d = %q, expected %q", i, got[i].Text, w)
		}
	}
	if !got[0].Forced {
		t.Error("Expected first announcement to be forced")
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be stamped")
	}

	all, err := store.RecentAnnouncements("", 10)
	if err != nil {
		t.Fatalf("RecentAnnouncements() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 announcements across sessions, got %d", len(all))
	}
}

func TestStoreRecentKeepsNewest(t *testing.T) {
	store := openTestStore(t)

	for _, text := range []string{"one", "two", "three", "four", "five"} {
		store.SaveAnnouncement(Announcement{SessionID: "s", Source: "menu", Kind: "Focus", Text: text})
	}

	got, err := store.RecentAnnouncements("s", 2)
	if err != nil {
		t.Fatalf("RecentAnnouncements() failed: %v", err)
	}
	if len(got) != 2 || got[0].Text != "four" || got[1].Text != "five" {
		t.Errorf("RecentAnnouncements() = %v, expected [four five]", got)
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.SaveAnnouncement(Announcement{SessionID: "first", Source: "menu", Kind: "Focus", Text: "x", CreatedAt: base})
	store.SaveAnnouncement(Announcement{SessionID: "first", Source: "menu", Kind: "Focus", Text: "y", CreatedAt: base.Add(time.Second)})
	store.SaveAnnouncement(Announcement{SessionID: "second", Source: "menu", Kind: "Focus", Text: "z", CreatedAt: base.Add(time.Minute)})

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != "second" {
		t.Errorf("Sessions()[0] = %s, expected second", sessions[0].SessionID)
	}
	if sessions[1].Count != 2 {
		t.Errorf("first session count = %d, expected 2", sessions[1].Count)
	}
}

func TestStoreClearSession(t *testing.T) {
	store := openTestStore(t)

	store.SaveAnnouncement(Announcement{SessionID: "gone", Source: "menu", Kind: "Focus", Text: "x"})
	store.SaveAnnouncement(Announcement{SessionID: "kept", Source: "menu", Kind: "Focus", Text: "y"})

	if err := store.ClearSession("gone"); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}

	got, _ := store.RecentAnnouncements("gone", 10)
	if len(got) != 0 {
		t.Errorf("Expected cleared session to be empty, got %d", len(got))
	}
	kept, _ := store.RecentAnnouncements("kept", 10)
	if len(kept) != 1 {
		t.Errorf("Expected other session untouched, got %d", len(kept))
	}
}

func TestStoreTildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/narrator/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "narrator", "test.db")); err != nil {
		t.Errorf("Expected database under home, got %v", err)
	}
}
