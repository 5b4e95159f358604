package conversation

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/diogo/termchat/internal/models"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conversations")
	store := NewStore(dir)

	tr := New("gpt-4o", true)
	tr.Push(models.NewMessage(models.RoleDeveloper, "rules"))
	tr.Push(models.NewMessage(models.RoleUser, "hi"))
	tr.Push(models.NewMessage(models.RoleAssistant, "hello"))

	path, err := store.Save("notes", tr)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join(dir, "notes.json") {
		t.Errorf("path = %s", path)
	}

	loaded, err := store.Load("notes")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, tr) {
		t.Errorf("Load() = %+v, want %+v", loaded, tr)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	first := New("gpt-4o", false)
	first.Push(models.NewMessage(models.RoleUser, "one"))
	if _, err := store.Save("x", first); err != nil {
		t.Fatal(err)
	}

	second := New("o1", false)
	if _, err := store.Save("x", second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load("x")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != "o1" || loaded.Len() != 0 {
		t.Errorf("Load() = %+v", loaded)
	}
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if _, err := store.Load("missing"); err == nil {
		t.Error("expected error for missing conversation")
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load("bad"); err == nil {
		t.Error("expected error for malformed conversation")
	}

	if err := os.WriteFile(filepath.Join(dir, "nomodel.json"), []byte(`{"input":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load("nomodel"); err == nil {
		t.Error("expected error for conversation without model")
	}
}

func TestStore_InvalidNames(t *testing.T) {
	store := NewStore(t.TempDir())
	tr := New("gpt-4o", false)

	for _, name := range []string{"", "   ", "a/b", `a\b`, "..", "."} {
		if _, err := store.Save(name, tr); err == nil {
			t.Errorf("Save(%q) expected error", name)
		}
	}
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}

	tr := New("gpt-4o", false)
	for _, n := range []string{"zeta", "alpha"} {
		if _, err := store.Save(n, tr); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "zeta"}) {
		t.Errorf("List() = %v", names)
	}
}

func TestStore_ListMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"))
	names, err := store.List()
	if err != nil || names != nil {
		t.Errorf("List() = %v, %v", names, err)
	}
}
