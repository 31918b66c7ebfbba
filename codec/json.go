package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/rolodex/core"
	"github.com/xeipuuv/gojsonschema"
)

// contactListSchema only pins the document shape. Elements that are not
// usable contacts are filtered during decoding, not rejected.
const contactListSchema = `{"type": "array"}`

var contactListLoader = gojsonschema.NewStringLoader(contactListSchema)

// EncodeJSON renders records as an indented JSON array.
func EncodeJSON(records []core.Contact) ([]byte, error) {
	if records == nil {
		records = []core.Contact{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses a JSON contact list.
func DecodeJSON(data []byte) ([]core.Contact, error) {
	result, err := gojsonschema.Validate(contactListLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	records := make([]core.Contact, 0, len(elems))
	for _, elem := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			continue
		}
		name, ok := jsonString(fields, "name")
		if !ok {
			continue
		}
		number, ok := jsonString(fields, "number")
		if !ok {
			continue
		}
		records = append(records, core.Contact{Name: name, Number: number})
	}
	return records, nil
}

// jsonString reports the string value of key, rejecting absent, null and
// non-string values.
func jsonString(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}
