// Package urlparse splits request targets of the form
// /seg1/seg2?key1=val1&key2 into decoded path segments and query
// parameters. Decoding of the individual components is pluggable, and
// duplicate query keys are resolved by a configurable policy.
package urlparse

import (
	"fmt"
	"net/url"
	"strings"
)

// Decoder decodes one raw path segment or query component.
type Decoder func(string) (string, error)

// Identity is a Decoder that returns its input unchanged.
func Identity(s string) (string, error) { return s, nil }

// Percent is a Decoder that resolves %XX escapes and '+' as space.
func Percent(s string) (string, error) { return url.QueryUnescape(s) }

// Param is one query parameter in source order. A key without '='
// (as in "?flag") has HasValue false.
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// ParsedURL is the result of splitting and decoding a request target.
type ParsedURL struct {
	// RawPath is the undecoded portion before the first '?'.
	RawPath string
	// RawQuery is the undecoded portion after the first '?'.
	// It is empty when HasQuery is false.
	RawQuery string
	HasQuery bool

	// Segments are the decoded path segments, split on '/' after the
	// leading character of a non-empty path is dropped.
	Segments []string
	// Params are the decoded query parameters in source order,
	// duplicates included.
	Params []Param
}

// Parse splits raw at the first '?', decodes every path segment and query
// component with dec, and returns the result. The first decoder error
// aborts the parse.
func Parse(raw string, dec Decoder) (*ParsedURL, error) {
	rawPath, rawQuery, hasQuery := strings.Cut(raw, "?")

	path := rawPath
	if path != "" {
		path = path[1:] // drop the leading slash
	}
	var segments []string
	for seg := range strings.SplitSeq(path, "/") {
		decoded, err := dec(seg)
		if err != nil {
			return nil, fmt.Errorf("urlparse: segment %q: %w", seg, err)
		}
		segments = append(segments, decoded)
	}

	var params []Param
	if hasQuery {
		for entry := range strings.SplitSeq(rawQuery, "&") {
			p, err := decodeParam(entry, dec)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
	}

	return &ParsedURL{
		RawPath:  rawPath,
		RawQuery: rawQuery,
		HasQuery: hasQuery,
		Segments: segments,
		Params:   params,
	}, nil
}

func decodeParam(entry string, dec Decoder) (Param, error) {
	rawKey, rawValue, hasValue := strings.Cut(entry, "=")
	key, err := dec(rawKey)
	if err != nil {
		return Param{}, fmt.Errorf("urlparse: query key %q: %w", rawKey, err)
	}
	p := Param{Key: key, HasValue: hasValue}
	if hasValue {
		if p.Value, err = dec(rawValue); err != nil {
			return Param{}, fmt.Errorf("urlparse: query value %q: %w", rawValue, err)
		}
	}
	return p, nil
}
