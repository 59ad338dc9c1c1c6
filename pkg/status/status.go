// Package status matches HTTP status codes against ordered acceptance
// policies.
//
// A policy is a list of specifiers, each either a single code or an inclusive
// interval. In configuration files a policy is written as a mixed list:
//
//	success_status_codes: [200, [300, 399]]
//
// Matching never reorders an interval: a Range whose Min exceeds its Max
// matches nothing. Decoding from YAML or JSON rejects such ranges.
package status

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Range is a single status code (Min == Max) or an inclusive interval.
type Range struct {
	Min int
	Max int
}

// Code returns a Range matching exactly c.
func Code(c int) Range {
	return Range{Min: c, Max: c}
}

// Between returns a Range matching lo through hi inclusive.
func Between(lo, hi int) Range {
	return Range{Min: lo, Max: hi}
}

// Contains reports whether code falls inside r.
func (r Range) Contains(code int) bool {
	return r.Min <= code && code <= r.Max
}

// IsSingle reports whether r matches exactly one code.
func (r Range) IsSingle() bool {
	return r.Min == r.Max
}

func (r Range) String() string {
	if r.IsSingle() {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// InRange reports whether code matches any specifier in ranges. The first
// match wins; an empty list matches nothing.
func InRange(code int, ranges []Range) bool {
	for _, r := range ranges {
		if r.Contains(code) {
			return true
		}
	}
	return false
}

// Policy is an ordered acceptance policy.
type Policy []Range

// Allows reports whether code is accepted by p.
func (p Policy) Allows(code int) bool {
	return InRange(code, p)
}

// UnmarshalYAML accepts either a scalar code or a two-element sequence.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var c int
		if err := value.Decode(&c); err != nil {
			return fmt.Errorf("status code at line %d: %w", value.Line, err)
		}
		*r = Code(c)
		return nil
	case yaml.SequenceNode:
		var bounds []int
		if err := value.Decode(&bounds); err != nil {
			return fmt.Errorf("status range at line %d: %w", value.Line, err)
		}
		return r.setBounds(bounds)
	default:
		return fmt.Errorf("status range at line %d: expected a code or [min, max]", value.Line)
	}
}

// UnmarshalJSON accepts either a number or a two-element array.
func (r *Range) UnmarshalJSON(data []byte) error {
	var c int
	if err := json.Unmarshal(data, &c); err == nil {
		*r = Code(c)
		return nil
	}

	var bounds []int
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("status range %s: expected a code or [min, max]", data)
	}
	return r.setBounds(bounds)
}

// MarshalJSON writes single codes as numbers and intervals as pairs.
func (r Range) MarshalJSON() ([]byte, error) {
	if r.IsSingle() {
		return json.Marshal(r.Min)
	}
	return json.Marshal([2]int{r.Min, r.Max})
}

func (r *Range) setBounds(bounds []int) error {
	if len(bounds) != 2 {
		return fmt.Errorf("status range needs exactly 2 bounds, got %d", len(bounds))
	}
	if bounds[0] > bounds[1] {
		return fmt.Errorf("status range [%d, %d] is reversed", bounds[0], bounds[1])
	}
	*r = Between(bounds[0], bounds[1])
	return nil
}
