package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveReturnsPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAvatarStore(dir, "https://taskmate.app/")
	if err != nil {
		t.Fatalf("NewAvatarStore: %v", err)
	}

	url, err := store.Save("user-1", "png", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "https://taskmate.app/avatars/user-1.png" {
		t.Fatalf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "user-1.png"))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != "img" {
		t.Fatalf("blob = %q", data)
	}
}

func TestSaveOverwritesOldExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAvatarStore(dir, "https://taskmate.app")
	if err != nil {
		t.Fatalf("NewAvatarStore: %v", err)
	}

	if _, err := store.Save("user-1", "png", strings.NewReader("old")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := store.Save("user-1", "jpg", strings.NewReader("new")); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "avatars", "user-1.png")); !os.IsNotExist(err) {
		t.Fatal("stale avatar with old extension survived")
	}
	data, err := os.ReadFile(filepath.Join(dir, "avatars", "user-1.jpg"))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("blob = %q", data)
	}
}

func TestSaveDefaultsExtension(t *testing.T) {
	store, err := NewAvatarStore(t.TempDir(), "https://taskmate.app")
	if err != nil {
		t.Fatalf("NewAvatarStore: %v", err)
	}

	url, err := store.Save("user-1", "", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(url, "/avatars/user-1.jpg") {
		t.Fatalf("url = %q, want a .jpg fallback", url)
	}
}
