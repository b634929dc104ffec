package service

import (
	"context"
	"io"
	"strings"

	"taskmate/internal/model"
)

// AvatarBlobStore is the object-storage surface for avatar images.
type AvatarBlobStore interface {
	Save(userID, ext string, r io.Reader) (string, error)
}

// ProfileService reads and edits profiles. Mutations are owner-only;
// callers pass the session's user id, not an arbitrary one.
type ProfileService struct {
	profiles ProfileStore
	avatars  AvatarBlobStore
}

func NewProfileService(profiles ProfileStore, avatars AvatarBlobStore) *ProfileService {
	return &ProfileService{profiles: profiles, avatars: avatars}
}

func (s *ProfileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	return s.profiles.FindByID(ctx, id)
}

// UpdateBio replaces the bio. Empty text or a lone "-" clears it.
func (s *ProfileService) UpdateBio(ctx context.Context, userID, bio string) error {
	bio = strings.TrimSpace(bio)
	if bio == "-" {
		bio = ""
	}
	return s.profiles.UpdateBio(ctx, userID, bio)
}

// SetAvatar uploads the image blob, then points the profile at its
// public URL.
func (s *ProfileService) SetAvatar(ctx context.Context, userID, ext string, r io.Reader) (string, error) {
	url, err := s.avatars.Save(userID, ext, r)
	if err != nil {
		return "", err
	}
	if err := s.profiles.UpdateAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
