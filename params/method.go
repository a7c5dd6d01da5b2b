// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// method.go — the forecasting Method enum and its text codec.

package params

import (
	"fmt"
	"strings"
)

// Method selects which validation branches apply.
type Method int

const (
	// None is the zero value; it is not a valid method for Validate.
	None Method = iota
	// Embed is plain time-delay embedding; no geometry checks.
	Embed
	// Simplex is nearest-neighbor projection.
	Simplex
	// SMap is locally weighted linear mapping.
	SMap
	// CCM is convergent cross mapping.
	CCM
)

var methodNames = map[Method]string{
	None:    "None",
	Embed:   "Embed",
	Simplex: "Simplex",
	SMap:    "SMap",
	CCM:     "CCM",
}

// String returns the canonical name, or "Unknown".
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return "Unknown"
}

// ParseMethod maps a case-insensitive name to a Method.
// "S-Map" is accepted for SMap.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	for m, name := range methodNames {
		if strings.ToLower(name) == key {
			return m, nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so parameter files may
// spell the method by name.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// embeds reports whether the method works in an embedded state space.
func (m Method) embeds() bool { return m == Simplex || m == SMap || m == CCM }

// strictSegments reports whether library and prediction segments must have
// start < stop.
func (m Method) strictSegments() bool { return m == Simplex || m == SMap }
