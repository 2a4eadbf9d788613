package localefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/i18npatch/internal/platform/errors"
)

// Entry is one key/value pair of a Section.
type Entry struct {
	Key   string
	Value string
}

// Section is a flat, ordered group of translation strings stored under one
// top-level key of a locale document.
type Section struct {
	entries []Entry
	index   map[string]int
}

// NewSection builds a section from entries in declaration order.
func NewSection(entries ...Entry) (Section, error) {
	if len(entries) == 0 {
		return Section{}, apperrors.New(apperrors.CodeInvalidArgument, "section has no entries")
	}
	section := Section{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if strings.TrimSpace(entry.Key) == "" {
			return Section{}, apperrors.New(apperrors.CodeInvalidArgument, "section key is empty")
		}
		if _, ok := section.index[entry.Key]; ok {
			return Section{}, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("section key %q is duplicated", entry.Key))
		}
		section.index[entry.Key] = len(section.entries)
		section.entries = append(section.entries, entry)
	}
	return section, nil
}

// MustSection is NewSection for fixed content known at compile time.
func MustSection(entries ...Entry) Section {
	section, err := NewSection(entries...)
	if err != nil {
		panic(err)
	}
	return section
}

// Len returns the number of entries.
func (s Section) Len() int {
	return len(s.entries)
}

// Keys returns the entry keys in order.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Get returns the value stored under key.
func (s Section) Get(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Equal reports whether both sections hold the same entries in the same order.
func (s Section) Equal(other Section) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the section as a compact JSON object in entry order.
// Non-ASCII text and HTML-significant characters are written literally.
func (s Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeString(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := encodeString(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(value string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("encode %q: %w", value, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
