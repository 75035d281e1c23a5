package bytesize

import (
	"encoding/binary"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Human oriented encodings (text, JSON, YAML) write the binary rendering,
// which is rounded to one decimal digit. Decoding accepts either an exact
// integer or any string Parse understands. The binary encoding carries the
// exact value as 8 big-endian bytes.

// MarshalText implements encoding.TextMarshaler.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("bytesize: invalid JSON %q", data)
	}
	res := gjson.ParseBytes(data)
	switch res.Type {
	case gjson.Number:
		n, err := strconv.ParseUint(res.Raw, 10, 64)
		if err != nil {
			return fmt.Errorf("bytesize: JSON number %s: %w", res.Raw, ErrTypeMismatch)
		}
		*b = ByteSize(n)
		return nil
	case gjson.String:
		return b.UnmarshalText([]byte(res.Str))
	default:
		return fmt.Errorf("bytesize: JSON %s: %w", res.Type, ErrTypeMismatch)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (b ByteSize) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("bytesize: line %d: %w", node.Line, ErrTypeMismatch)
	}
	switch node.ShortTag() {
	case "!!int":
		n, err := strconv.ParseUint(node.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("bytesize: line %d: integer %s: %w", node.Line, node.Value, ErrTypeMismatch)
		}
		*b = ByteSize(n)
		return nil
	case "!!str":
		return b.UnmarshalText([]byte(node.Value))
	default:
		return fmt.Errorf("bytesize: line %d: %s value: %w", node.Line, node.ShortTag(), ErrTypeMismatch)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b ByteSize) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(b)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *ByteSize) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("bytesize: binary form needs 8 bytes, got %d", len(data))
	}
	*b = ByteSize(binary.BigEndian.Uint64(data))
	return nil
}

// Set implements pflag.Value so a ByteSize can be used as a flag.
func (b *ByteSize) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (b *ByteSize) Type() string {
	return "bytesize"
}
