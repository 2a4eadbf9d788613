// Package localefile reads and rewrites JSON locale documents without
// disturbing key order or escaping non-Latin text.
package localefile

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	apperrors "github.com/louisbranch/i18npatch/internal/platform/errors"
)

// Indent is the nesting unit used when a document is written back to disk.
const Indent = "  "

var writeOptions = &pretty.Options{
	// Zero width keeps every array element on its own line.
	Width:    0,
	Prefix:   "",
	Indent:   Indent,
	SortKeys: false,
}

// Document is a parsed locale file. Its root is always a JSON object and
// top-level keys are unique.
type Document struct {
	raw []byte
}

// Parse validates data and returns the document it holds.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.New(apperrors.CodeParse, "locale file is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apperrors.New(apperrors.CodeParse, fmt.Sprintf("locale file root is %s, want object", describe(root)))
	}

	seen := map[string]struct{}{}
	var duplicate string
	root.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if _, ok := seen[name]; ok {
			duplicate = name
			return false
		}
		seen[name] = struct{}{}
		return true
	})
	if duplicate != "" {
		return nil, apperrors.New(apperrors.CodeParse, fmt.Sprintf("locale file repeats top-level key %q", duplicate))
	}

	raw := make([]byte, len(data))
	copy(raw, data)
	return &Document{raw: raw}, nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	var keys []string
	gjson.ParseBytes(d.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Has reports whether key is present at the top level.
func (d *Document) Has(key string) bool {
	_, ok := d.lookup(key)
	return ok
}

// Raw returns the JSON text stored under a top-level key.
func (d *Document) Raw(key string) (string, bool) {
	value, ok := d.lookup(key)
	if !ok {
		return "", false
	}
	return value.Raw, true
}

// Section decodes a top-level key holding a flat object of strings.
func (d *Document) Section(key string) (Section, bool) {
	value, ok := d.lookup(key)
	if !ok || !value.IsObject() {
		return Section{}, false
	}
	var entries []Entry
	flat := true
	value.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			flat = false
			return false
		}
		entries = append(entries, Entry{Key: k.String(), Value: v.String()})
		return true
	})
	if !flat {
		return Section{}, false
	}
	section, err := NewSection(entries...)
	if err != nil {
		return Section{}, false
	}
	return section, true
}

// SetSection stores section under key, replacing any previous value whole.
// An existing key keeps its position; a new key is appended.
func (d *Document) SetSection(key string, section Section) error {
	if strings.TrimSpace(key) == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "section key is required")
	}
	if section.Len() == 0 {
		return apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("section %q has no entries", key))
	}
	value, err := section.MarshalJSON()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, fmt.Sprintf("encode section %q", key), err)
	}
	updated, err := sjson.SetRawBytes(d.raw, escapePath(key), value)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, fmt.Sprintf("set section %q", key), err)
	}
	d.raw = updated
	return nil
}

// Bytes renders the document with two-space indentation and a trailing
// newline.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(d.raw, writeOptions)
}

func (d *Document) lookup(key string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	gjson.ParseBytes(d.raw).ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

func describe(value gjson.Result) string {
	switch {
	case value.IsArray():
		return "an array"
	case value.Type == gjson.String:
		return "a string"
	case value.Type == gjson.Number:
		return "a number"
	case value.Type == gjson.True, value.Type == gjson.False:
		return "a boolean"
	case value.Type == gjson.Null:
		return "null"
	default:
		return "empty"
	}
}
