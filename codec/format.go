package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poiesic/rolodex/core"
)

// Format identifies a text encoding of the contact list.
type Format int

const (
	// FormatJSON is a JSON array of {"name", "number"} objects.
	FormatJSON Format = iota
	// FormatYAML is a YAML sequence of mappings with name and number keys.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format for a file by its extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat parses a format name as written in configuration.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode renders records in format f.
func Encode(f Format, records []core.Contact) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(records)
	case FormatYAML:
		return EncodeYAML(records)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Decode parses data in format f. Only elements carrying both name and number
// as strings are returned; other elements are skipped.
func Decode(f Format, data []byte) ([]core.Contact, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
