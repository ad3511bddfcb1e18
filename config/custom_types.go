/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"gopkg.in/yaml.v3"
)

// ByteSize represents a size in bytes that can be parsed from JSON, YAML, and text.
// Both integers and human-readable strings (e.g. "250M", "1Gi") are accepted.
type ByteSize uint64

// UnmarshalJSON implements json.Unmarshaler interface.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		if num < 0 {
			return fmt.Errorf("negative value is not allowed: %d", num)
		}
		*b = ByteSize(num)
		return nil
	}
	bs, err := parseByteSize(s)
	if err != nil {
		return err
	}
	*b = bs
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler interface.
func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid byte size format: %w", err)
	}
	return b.UnmarshalJSON([]byte(s))
}

// UnmarshalText implements encoding.TextUnmarshaler interface (used by mapstructure hooks).
func (b *ByteSize) UnmarshalText(text []byte) error {
	return b.UnmarshalJSON(text)
}

// String returns the human-readable representation.
func (b ByteSize) String() string {
	return bytefmt.ByteSize(uint64(b))
}

// MarshalJSON implements json.Marshaler interface.
func (b ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// MarshalYAML implements yaml.Marshaler interface.
func (b ByteSize) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func parseByteSize(s string) (ByteSize, error) {
	v := strings.TrimSpace(s)
	// k8s-style power-of-two suffixes ("Mi", "Gi") are the same as bytefmt's "M", "G".
	if strings.HasSuffix(v, "i") {
		v = strings.TrimSuffix(v, "i")
	}
	num, err := bytefmt.ToBytes(v)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size format (%s): %w", s, err)
	}
	return ByteSize(num), nil
}

// TimeDuration represents a time duration that can be parsed from JSON, YAML, and text.
// Both integers (nanoseconds) and human-readable strings (e.g. "1h30m") are accepted.
// Negative values are rejected.
type TimeDuration time.Duration

// UnmarshalJSON implements json.Unmarshaler interface.
func (d *TimeDuration) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		if num < 0 {
			return fmt.Errorf("negative value is not allowed: %d", num)
		}
		*d = TimeDuration(num)
		return nil
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid time duration format (%s): %w", s, err)
	}
	if dur < 0 {
		return fmt.Errorf("negative value is not allowed: %s", s)
	}
	*d = TimeDuration(dur)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler interface.
func (d *TimeDuration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid time duration format: %w", err)
	}
	return d.UnmarshalJSON([]byte(s))
}

// UnmarshalText implements encoding.TextUnmarshaler interface (used by mapstructure hooks).
func (d *TimeDuration) UnmarshalText(text []byte) error {
	return d.UnmarshalJSON(text)
}

// String returns the human-readable representation.
func (d TimeDuration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler interface.
func (d TimeDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// MarshalYAML implements yaml.Marshaler interface.
func (d TimeDuration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
