package storage

import (
	"errors"
	"testing"

	"github.com/poiesic/rolodex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("ananya")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerializationFailed))
}

func TestMarshalUnmarshalContact(t *testing.T) {
	tests := []struct {
		name    string
		contact *core.Contact
	}{
		{"typical contact", &core.Contact{Name: "ananya", Number: "111"}},
		{"empty number", &core.Contact{Name: "rahul", Number: ""}},
		{"empty key", &core.Contact{Name: "", Number: "999"}},
		{"unicode number", &core.Contact{Name: "zoe", Number: "+44 ☎ 0207"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalContact(tt.contact)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalContact(data)
			require.NoError(t, err)
			assert.Equal(t, tt.contact, decoded)
		})
	}
}

func TestUnmarshalContact_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"truncated number", MarshalContact(&core.Contact{Name: "ankit", Number: "333"})[:7]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalContact(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSerializationFailed))
		})
	}
}
