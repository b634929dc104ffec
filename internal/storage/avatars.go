// Package storage keeps uploaded avatar images in a single flat
// namespace on disk, served publicly under the configured base URL.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AvatarStore writes one blob per user, keyed by user id plus the file
// extension. Writes overwrite any previous avatar for the user.
type AvatarStore struct {
	dir     string
	baseURL string
}

// NewAvatarStore creates the avatars directory under dir if needed.
func NewAvatarStore(dir, baseURL string) (*AvatarStore, error) {
	avatarDir := filepath.Join(dir, "avatars")
	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &AvatarStore{dir: avatarDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save stores the avatar for userID and returns its public URL. An
// earlier avatar with a different extension is removed so the user keeps
// exactly one blob.
func (s *AvatarStore) Save(userID, ext string, r io.Reader) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	name := userID + "." + ext

	matches, _ := filepath.Glob(filepath.Join(s.dir, userID+".*"))
	for _, old := range matches {
		if filepath.Base(old) != name {
			os.Remove(old)
		}
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}

	return s.baseURL + "/avatars/" + name, nil
}
