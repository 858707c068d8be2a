package page

import (
	"errors"
	"testing"
)

func TestParseIDRoundTrip(t *testing.T) {
	for _, id := range AllIDs() {
		got, err := ParseID(id.String())
		if err != nil {
			t.Fatalf("ParseID(%q): %v", id.String(), err)
		}
		if got != id {
			t.Errorf("ParseID(%q) = %v, want %v", id.String(), got, id)
		}
	}
}

func TestParseIDEmptyIsNone(t *testing.T) {
	got, err := ParseID("")
	if err != nil {
		t.Fatalf("ParseID(\"\"): %v", err)
	}
	if got != None {
		t.Errorf("ParseID(\"\") = %v, want None", got)
	}
}

func TestParseIDUnknown(t *testing.T) {
	_, err := ParseID("blog")
	if !errors.Is(err, ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
}

func TestIDString(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{Home, "home"},
		{Download, "download"},
		{Docs, "docs"},
		{Guidelines, "guidelines"},
		{Donate, "donate"},
		{ID(99), "ID(99)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("ID(%d).String() = %q, want %q", int(tt.id), got, tt.want)
		}
	}
}

func TestAllIDsExcludesNone(t *testing.T) {
	ids := AllIDs()
	if len(ids) != 11 {
		t.Fatalf("AllIDs() returned %d ids, want 11", len(ids))
	}
	for _, id := range ids {
		if id == None {
			t.Fatal("AllIDs() must not include None")
		}
	}
}
