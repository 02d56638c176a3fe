// Package normalize recovers a JSON object from free-form model output.
//
// The inference backend is prompted to answer with bare JSON, but it may wrap
// the answer in markdown fences or surround it with prose. Decode strips the
// fence markers and parses the remainder; when that fails it retries on the
// span between the first '{' and the last '}'. Anything else is rejected.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Strategy names the tier that produced the object.
type Strategy string

const (
	// StrategyDirect means the fence-stripped text parsed as-is.
	StrategyDirect Strategy = "direct"
	// StrategyRecovered means the object was cut out between the outer braces.
	StrategyRecovered Strategy = "recovered"
)

// ErrMalformedResponse is matched by every error Decode returns.
var ErrMalformedResponse = errors.New("malformed model response")

// MalformedResponseError carries the raw model text that could not be decoded.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return ErrMalformedResponse.Error()
	}
	return fmt.Sprintf("%s: %v", ErrMalformedResponse, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Is reports ErrMalformedResponse as a match.
func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// Result is a decoded object and the strategy that found it.
type Result struct {
	Object   map[string]any
	Strategy Strategy
}

var fences = strings.NewReplacer("```json", "", "```", "")

// Normalize returns the JSON object contained in raw.
func Normalize(raw string) (map[string]any, error) {
	res, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return res.Object, nil
}

// Decode runs the two-tier recovery over raw.
// Numbers are kept as json.Number so values round-trip unchanged.
func Decode(raw string) (Result, error) {
	text := strings.TrimSpace(fences.Replace(raw))

	obj, err := decodeObject(text)
	if err == nil {
		return Result{Object: obj, Strategy: StrategyDirect}, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return Result{}, &MalformedResponseError{Raw: raw, Err: errors.New("no JSON object found")}
	}

	obj, rerr := decodeObject(text[start : end+1])
	if rerr != nil {
		return Result{}, &MalformedResponseError{Raw: raw, Err: rerr}
	}
	return Result{Object: obj, Strategy: StrategyRecovered}, nil
}

// decodeObject parses s as exactly one JSON object and nothing else.
func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("top-level value is not an object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return obj, nil
}
