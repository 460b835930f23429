package coder

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that is encoded as an integer number of
// milliseconds.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Milliseconds returns d as an integer millisecond count.
func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

// String formats the duration the way time.Duration does.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Milliseconds())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var ms int64

	err := json.Unmarshal(data, &ms)
	if err != nil {
		return fmt.Errorf("decoding duration milliseconds: %w", err)
	}

	*d = Duration(time.Duration(ms) * time.Millisecond)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Milliseconds(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64

	err := value.Decode(&ms)
	if err != nil {
		return fmt.Errorf("decoding duration milliseconds: %w", err)
	}

	*d = Duration(time.Duration(ms) * time.Millisecond)

	return nil
}
