package link

import (
	"errors"
	"testing"
)

func TestJoinURL(t *testing.T) {
	got := JoinURL("https://taskmate.app/", "abc")
	if got != "https://taskmate.app/join/abc" {
		t.Fatalf("JoinURL = %q", got)
	}
}

func TestBotURL(t *testing.T) {
	got := BotURL("taskmate_bot", "abc")
	if got != "https://t.me/taskmate_bot?start=join-abc" {
		t.Fatalf("BotURL = %q", got)
	}
}

func TestParseJoinURL(t *testing.T) {
	cases := []struct {
		raw    string
		id     string
		wantOK bool
	}{
		{"https://taskmate.app/join/abc", "abc", true},
		{" https://taskmate.app/join/abc ", "abc", true},
		{"taskmate://join/abc", "abc", true},
		{"https://taskmate.app/join/", "", false},
		{"https://taskmate.app/other/abc", "", false},
		{"taskmate://join/", "", false},
		{"taskmate://join/a/b", "", false},
		{"not a url at all ::", "", false},
	}
	for _, tc := range cases {
		id, err := ParseJoinURL(tc.raw)
		if tc.wantOK {
			if err != nil || id != tc.id {
				t.Errorf("ParseJoinURL(%q) = %q, %v; want %q", tc.raw, id, err, tc.id)
			}
			continue
		}
		if !errors.Is(err, ErrNotJoinLink) {
			t.Errorf("ParseJoinURL(%q) err = %v, want ErrNotJoinLink", tc.raw, err)
		}
	}
}

func TestParseStartPayload(t *testing.T) {
	if id, ok := ParseStartPayload("join-abc"); !ok || id != "abc" {
		t.Fatalf("ParseStartPayload(join-abc) = %q, %v", id, ok)
	}
	if _, ok := ParseStartPayload("join-"); ok {
		t.Fatal("empty id accepted")
	}
	if _, ok := ParseStartPayload("ref-abc"); ok {
		t.Fatal("foreign payload accepted")
	}
}
