package urlparse

import "fmt"

// DupPolicy decides what happens when the same query key appears more than
// once while building a map.
type DupPolicy struct {
	kind  int
	delim string
}

const (
	dupReject = iota
	dupKeepFirst
	dupKeepLast
	dupConcat
)

var (
	// RejectDup makes QueryMap fail with a *DupKeyError on the first
	// repeated key.
	RejectDup = DupPolicy{kind: dupReject}
	// KeepFirst keeps the first value seen for a repeated key.
	KeepFirst = DupPolicy{kind: dupKeepFirst}
	// KeepLast keeps the last value seen for a repeated key.
	KeepLast = DupPolicy{kind: dupKeepLast}
)

// ConcatDup joins the values of a repeated key with delim, in source order.
func ConcatDup(delim string) DupPolicy {
	return DupPolicy{kind: dupConcat, delim: delim}
}

// DupKeyError reports the query key that violated RejectDup.
type DupKeyError struct {
	Key string
}

func (e *DupKeyError) Error() string {
	return fmt.Sprintf("urlparse: duplicate query key %q", e.Key)
}

// QueryMap collapses the parameter list into a key-value map. Parameters
// without a value take missing as their value, and repeated keys are
// resolved by policy.
func (pu *ParsedURL) QueryMap(missing string, policy DupPolicy) (map[string]string, error) {
	m := make(map[string]string, len(pu.Params))
	for _, p := range pu.Params {
		value := p.Value
		if !p.HasValue {
			value = missing
		}
		existing, seen := m[p.Key]
		if !seen {
			m[p.Key] = value
			continue
		}
		switch policy.kind {
		case dupReject:
			return nil, &DupKeyError{Key: p.Key}
		case dupKeepFirst:
			// keep existing
		case dupKeepLast:
			m[p.Key] = value
		case dupConcat:
			m[p.Key] = existing + policy.delim + value
		}
	}
	return m, nil
}
