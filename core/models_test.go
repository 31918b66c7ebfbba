package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"same content produces same ID", "ananya"},
		{"empty string", ""},
		{"long content", "averyveryverylongcontactnamethatstillhashesconsistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("anand")
	id2 := IDFromContent("ankit")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestContact_Key(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"lowercase", Contact{Name: "rahul"}, "rahul"},
		{"mixed case", Contact{Name: "Ananya"}, "ananya"},
		{"punctuation collapses", Contact{Name: "Jo-Ann"}, "joann"},
		{"no letters", Contact{Name: "123-456"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.contact.Key(); got != tt.want {
				t.Errorf("Contact.Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContact_ID(t *testing.T) {
	a := Contact{Name: "Jo-Ann", Number: "1"}
	b := Contact{Name: "joann", Number: "2"}

	if a.ID() != b.ID() {
		t.Errorf("contacts with the same folded key should share an ID")
	}
}
