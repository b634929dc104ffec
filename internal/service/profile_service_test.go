package service

import (
	"context"
	"testing"

	"taskmate/internal/model"
)

func TestUpdateBioTrims(t *testing.T) {
	profiles := &fakeProfileStore{profiles: map[string]model.Profile{
		"u": {ID: "u", Username: "alice"},
	}}
	svc := NewProfileService(profiles, nil)

	if err := svc.UpdateBio(context.Background(), "u", "  hello  "); err != nil {
		t.Fatalf("UpdateBio: %v", err)
	}
	if got := profiles.profiles["u"].Bio; got != "hello" {
		t.Fatalf("Bio = %q", got)
	}
}

func TestUpdateBioClears(t *testing.T) {
	for _, input := range []string{"", "   ", "-", " - "} {
		profiles := &fakeProfileStore{profiles: map[string]model.Profile{
			"u": {ID: "u", Username: "alice", Bio: "old bio"},
		}}
		svc := NewProfileService(profiles, nil)

		if err := svc.UpdateBio(context.Background(), "u", input); err != nil {
			t.Fatalf("UpdateBio(%q): %v", input, err)
		}
		if got := profiles.profiles["u"].Bio; got != "" {
			t.Fatalf("Bio = %q after UpdateBio(%q), want cleared", got, input)
		}
	}
}

func TestUpdateBioKeepsLiteralDashText(t *testing.T) {
	profiles := &fakeProfileStore{profiles: map[string]model.Profile{
		"u": {ID: "u", Username: "alice"},
	}}
	svc := NewProfileService(profiles, nil)

	if err := svc.UpdateBio(context.Background(), "u", "- likes hiking"); err != nil {
		t.Fatalf("UpdateBio: %v", err)
	}
	if got := profiles.profiles["u"].Bio; got != "- likes hiking" {
		t.Fatalf("Bio = %q, want the text kept", got)
	}
}
