// ABOUTME: Tolerant normalization of generation-service content into display entries
// ABOUTME: Classifies the content by JSON shape and maps every shape onto a list of strings

package news

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// payloadKind is the shape of the content returned by the generation service
type payloadKind int

const (
	payloadRawText payloadKind = iota
	payloadArray
	payloadEntries
	payloadObject
	payloadScalar
)

func (k payloadKind) String() string {
	switch k {
	case payloadArray:
		return "array"
	case payloadEntries:
		return "entries"
	case payloadObject:
		return "object"
	case payloadScalar:
		return "scalar"
	default:
		return "raw-text"
	}
}

// payload is the classified content. Which fields are set depends on kind.
type payload struct {
	kind payloadKind

	// text is set for payloadRawText
	text string

	// values holds array elements, entries elements, or object values in document order
	values []json.RawMessage

	// scalar is set for payloadScalar
	scalar json.RawMessage
}

var codeFencePattern = regexp.MustCompile("(?s)^\\s*```[A-Za-z0-9_-]*\\s*(.*?)\\s*```\\s*$")

// NormalizeEntries turns raw generation content into trimmed, non-empty entries.
// It accepts any input; the worst case is an empty list.
func NormalizeEntries(content string) []string {
	entries, _ := normalize(content)
	return entries
}

// normalize also reports the shape the content was read as
func normalize(content string) ([]string, payloadKind) {
	p := classify(content)

	var entries []string
	switch p.kind {
	case payloadArray, payloadEntries:
		entries = stringifyAll(p.values)
	case payloadObject:
		for _, v := range p.values {
			if elems, ok := asArray(v); ok {
				entries = append(entries, stringifyAll(elems)...)
				continue
			}
			if s, ok := stringify(v); ok {
				entries = append(entries, s)
			}
		}
	case payloadScalar:
		if s, ok := stringify(p.scalar); ok {
			entries = append(entries, s)
		}
	case payloadRawText:
		entries = []string{p.text}
	}

	return compactEntries(entries), p.kind
}

// classify decides the shape of content. Anything that is not valid JSON is raw text.
func classify(content string) payload {
	rawText := payload{kind: payloadRawText, text: strings.TrimSpace(content)}

	body := bytes.TrimSpace([]byte(stripCodeFence(content)))
	if len(body) == 0 || !json.Valid(body) {
		return rawText
	}

	switch body[0] {
	case '[':
		var values []json.RawMessage
		if err := json.Unmarshal(body, &values); err != nil {
			return rawText
		}
		return payload{kind: payloadArray, values: values}

	case '{':
		keys, values, err := orderedObject(body)
		if err != nil {
			return rawText
		}
		for i, key := range keys {
			if key != "entries" {
				continue
			}
			if elems, ok := asArray(values[i]); ok {
				return payload{kind: payloadEntries, values: elems}
			}
		}
		return payload{kind: payloadObject, values: values}

	default:
		return payload{kind: payloadScalar, scalar: body}
	}
}

func stripCodeFence(content string) string {
	if m := codeFencePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return content
}

// orderedObject decodes a JSON object keeping keys in document order.
// A repeated key keeps its first position and its last value.
func orderedObject(body []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	var keys []string
	var values []json.RawMessage
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, errors.New("object key is not a string")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		if i, seen := index[key]; seen {
			values[i] = value
			continue
		}
		index[key] = len(keys)
		keys = append(keys, key)
		values = append(values, value)
	}

	return keys, values, nil
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	return elems, true
}

func stringifyAll(values []json.RawMessage) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := stringify(v); ok {
			out = append(out, s)
		}
	}
	return out
}

// stringify renders one JSON value as display text
func stringify(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", false
		}
		return buf.String(), true
	default:
		// numbers, booleans and null keep their literal form
		return string(raw), true
	}
}

func compactEntries(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
