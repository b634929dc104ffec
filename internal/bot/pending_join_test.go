package bot

import "testing"

func newStashBot() *Bot {
	return &Bot{pendingJoins: make(map[int64]string)}
}

func TestPendingJoinTakenExactlyOnce(t *testing.T) {
	b := newStashBot()
	b.setPendingJoin(7, "inv-1")

	id, ok := b.takePendingJoin(7)
	if !ok || id != "inv-1" {
		t.Fatalf("takePendingJoin = %q, %v; want the stashed invite", id, ok)
	}
	if id, ok := b.takePendingJoin(7); ok {
		t.Fatalf("stash survived the first take: %q", id)
	}
}

func TestPendingJoinMissWithoutStash(t *testing.T) {
	b := newStashBot()
	if id, ok := b.takePendingJoin(7); ok {
		t.Fatalf("take reported a stash for an unknown chat: %q", id)
	}
}

func TestPendingJoinLaterLinkWins(t *testing.T) {
	b := newStashBot()
	b.setPendingJoin(7, "inv-1")
	b.setPendingJoin(7, "inv-2")

	if id, _ := b.takePendingJoin(7); id != "inv-2" {
		t.Fatalf("takePendingJoin = %q, want the later invite", id)
	}
	if _, ok := b.takePendingJoin(7); ok {
		t.Fatal("overwritten stash left a second entry behind")
	}
}

func TestPendingJoinIsPerChat(t *testing.T) {
	b := newStashBot()
	b.setPendingJoin(1, "inv-a")
	b.setPendingJoin(2, "inv-b")

	if id, _ := b.takePendingJoin(2); id != "inv-b" {
		t.Fatalf("chat 2 stash = %q", id)
	}
	if id, ok := b.takePendingJoin(1); !ok || id != "inv-a" {
		t.Fatalf("chat 1 stash = %q, %v", id, ok)
	}
}
