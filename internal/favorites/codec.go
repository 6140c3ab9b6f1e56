// Package favorites converts between the serialized favorites column on a user
// row and an in-memory ordered list of unique opening identifiers.
//
// The persisted form is a JSON array of strings. Decode is fail-open: any
// malformed value yields an empty list so a corrupted favorites field never
// blocks a profile read.
package favorites

import (
	"encoding/json"
)

// Decode parses the raw favorites column into an ordered list of opening ids.
// A nil or empty raw value and any parse failure both yield an empty list.
func Decode(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(*raw), &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

// Encode serializes an ordered list of opening ids back into the column form.
func Encode(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Add appends openingID to the decoded list unless it is already present,
// preserving existing order, and returns the re-encoded value alongside the
// updated list. Adding an id that is already present is a no-op.
func Add(raw *string, openingID string) (string, []string, error) {
	list := Decode(raw)
	if !contains(list, openingID) {
		list = append(list, openingID)
	}
	encoded, err := Encode(list)
	if err != nil {
		return "", nil, err
	}
	return encoded, list, nil
}

// Remove deletes openingID from the decoded list if present; removing an
// absent id is a no-op. Returns the re-encoded value and the updated list.
func Remove(raw *string, openingID string) (string, []string, error) {
	list := Decode(raw)
	for i, id := range list {
		if id == openingID {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	encoded, err := Encode(list)
	if err != nil {
		return "", nil, err
	}
	return encoded, list, nil
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
