// Package merger parses the inference text and merges it over the scanner
// candidates.
package merger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"github.com/init-pkg/sheet-export/domain/workbook"
)

var (
	ErrEmptyOutput = errors.New("inference returned no output")
	ErrNoMapping   = errors.New("no JSON mapping found in inference output")
)

type KeyNormalizer interface {
	Normalize(text string) string
}

type Merger struct {
	normalizer KeyNormalizer
}

func New(normalizer KeyNormalizer) *Merger {
	return &Merger{normalizer}
}

// Merge returns {...candidates, ...inferred}. The error is a diagnostic only;
// the mapping is always usable.
func (this *Merger) Merge(candidates workbook.Mapping, raw string) (workbook.Mapping, workbook.Mapping, error) {
	inferred, err := this.ParseInferred(raw)
	out := make(workbook.Mapping, len(candidates)+len(inferred))
	for k, v := range candidates {
		out[k] = v
	}
	for k, v := range inferred {
		out[k] = v
	}
	return out, inferred, err
}

// ParseInferred tries a strict parse of the whole text, then the first
// {...} substring (strict, repaired, then hjson). Entries whose value is not
// a cell reference shaped string are dropped.
func (this *Merger) ParseInferred(raw string) (workbook.Mapping, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return workbook.Mapping{}, ErrEmptyOutput
	}

	if entries, ok := decodeObject([]byte(trimmed)); ok {
		return this.normalize(entries), nil
	}

	embedded, found := firstObject(trimmed)
	if !found {
		return workbook.Mapping{}, ErrNoMapping
	}
	if entries, ok := decodeObject([]byte(embedded)); ok {
		return this.normalize(entries), nil
	}
	// Lenient passes only count when they recover at least one entry; prose
	// with braces repairs to an empty object.
	if repaired, err := repair(embedded); err == nil {
		if entries, ok := decodeObject([]byte(repaired)); ok && len(entries) > 0 {
			return this.normalize(entries), nil
		}
	}
	if entries, ok := decodeHjson(embedded); ok && len(entries) > 0 {
		return this.normalize(entries), nil
	}

	return workbook.Mapping{}, ErrNoMapping
}

func (this *Merger) normalize(entries []entry) workbook.Mapping {
	out := make(workbook.Mapping, len(entries))
	for _, e := range entries {
		key := this.normalizer.Normalize(e.key)
		if key == "" {
			continue
		}
		var value string
		if err := json.Unmarshal(e.value, &value); err != nil {
			continue
		}
		if !workbook.LooksLikeCellRef(value) {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

type entry struct {
	key   string
	value json.RawMessage
}

// decodeObject reads a top-level JSON object keeping document order, so a
// later key wins when two keys normalize to the same field.
func decodeObject(data []byte) ([]entry, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var entries []entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		entries = append(entries, entry{key, value})
	}
	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		// trailing content after the object
		return nil, false
	}
	return entries, true
}

// firstObject returns the text from the first '{' to the last '}'.
func firstObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func repair(s string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("json repair: %v", r)
		}
	}()
	return jsonrepair.RepairJSON(s)
}

func decodeHjson(s string) ([]entry, bool) {
	var generic map[string]any
	if err := hjson.Unmarshal([]byte(s), &generic); err != nil {
		return nil, false
	}
	data, err := json.Marshal(generic)
	if err != nil {
		return nil, false
	}
	return decodeObject(data)
}
