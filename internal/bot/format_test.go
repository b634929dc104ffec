package bot

import "testing"

func TestShortTitle(t *testing.T) {
	if got := shortTitle("Buy milk", 20); got != "Buy milk" {
		t.Errorf("shortTitle = %q", got)
	}
	if got := shortTitle("a very long checklist name", 10); got != "a very lo…" {
		t.Errorf("shortTitle = %q", got)
	}
	if got := shortTitle("line\nbreak", 20); got != "line break" {
		t.Errorf("newline not flattened: %q", got)
	}
}

func TestCancelAndSkipInputs(t *testing.T) {
	if !isCancelInput("  Cancel ") || !isCancelInput(btnCancel) {
		t.Error("cancel input not recognized")
	}
	if !isSkipInput("-") || !isSkipInput(btnSkip) || !isSkipInput("SKIP") {
		t.Error("skip input not recognized")
	}
	if isCancelInput("continue") || isSkipInput("keep") {
		t.Error("ordinary text treated as control input")
	}
}
