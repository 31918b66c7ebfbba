package codec

import (
	"errors"
	"testing"

	"github.com/poiesic/rolodex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []core.Contact{
	{Name: "anand", Number: "222"},
	{Name: "ananya", Number: "111"},
	{Name: "no", Number: "0044 20 7946 0000"},
	{Name: "", Number: "true"},
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"contacts.json", FormatJSON},
		{"contacts", FormatJSON},
		{"/tmp/book.YAML", FormatYAML},
		{"book.yml", FormatYAML},
		{"dir.yaml/contacts.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("csv")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(f, sample)
			require.NoError(t, err)

			decoded, err := Decode(f, data)
			require.NoError(t, err)
			assert.Equal(t, sample, decoded)
		})
	}
}

// numbers that change type or meaning when written as plain YAML scalars
var awkwardNumbers = []string{
	"<<", "~", "null", "yes", "off", "0x1F", "0o17", "1e3", ".inf", "-.nan",
	"-", "? x", "#1", "a: b", "&anchor", "*ref", "!tag", "|", ">", "'", `"`,
	"line\nbreak", " leading", "trailing ", "\tindent", "%d", "@home", "`cmd`",
	"{}", "[1, 2]", "",
}

func TestEncodeDecode_AwkwardNumbers(t *testing.T) {
	records := make([]core.Contact, 0, len(awkwardNumbers))
	for _, n := range awkwardNumbers {
		records = append(records, core.Contact{Name: "x", Number: n})
	}

	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(f, records)
			require.NoError(t, err)

			decoded, err := Decode(f, data)
			require.NoError(t, err)
			assert.Equal(t, records, decoded)
		})
	}
}

func TestEncodeDecodeYAML_InvalidUTF8(t *testing.T) {
	records := []core.Contact{
		{Name: "caf\xe9", Number: "\xff\xfe"},
		{Name: "rahul", Number: "55\x805"},
	}

	data, err := EncodeYAML(records)
	require.NoError(t, err)
	assert.Contains(t, string(data), "!!binary")

	decoded, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestEncode_EmptyList(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(f, nil)
			require.NoError(t, err)

			decoded, err := Decode(f, data)
			require.NoError(t, err)
			assert.Empty(t, decoded)
		})
	}
}

func TestEncodeJSON_Layout(t *testing.T) {
	data, err := EncodeJSON([]core.Contact{{Name: "rahul", Number: "555"}})
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"rahul\",\n    \"number\": \"555\"\n  }\n]\n", string(data))
}

func TestUnknownFormat(t *testing.T) {
	_, err := Encode(Format(9), sample)
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Decode(Format(9), nil)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
