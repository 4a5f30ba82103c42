// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrExponent is returned, if the encoded exponent differs from the exponent of the value's type.
var ErrExponent = errors.New("exponent mismatch")

var (
	jsonParts = []string{`{"m":`, `,"e":`, `}`}
	// 11 is the max len of an int32.
	maxJSONLen = len(jsonParts[0]) + len(jsonParts[1]) + len(jsonParts[2]) + 2*11
)

// meValue is a serialized form of a value, like `{"m":300,"e":-8}`.
type meValue struct {
	M int32  `json:"m" yaml:"m"`
	E *int32 `json:"e,omitempty" yaml:"e,omitempty"`
}

func (v Value[E]) toME() meValue {
	raw, e := split(v)
	return meValue{M: raw, E: &e}
}

func fromME[E Exp](me meValue) (Value[E], error) {
	if me.E != nil {
		if want := Exponent[E](); *me.E != want {
			return Value[E]{}, fmt.Errorf("%w: got %d, want %d", ErrExponent, *me.E, want)
		}
	}
	return New[E](me.M), nil
}

// MarshalBinary returns v's significand in big-endian byte order.
func (v Value[E]) MarshalBinary() ([]byte, error) {
	b := v.BEBytes()
	return b[:], nil
}

// UnmarshalBinary decodes 4 big-endian bytes into v.
func (v *Value[E]) UnmarshalBinary(data []byte) error {
	if len(data) != Bits/8 {
		return fmt.Errorf("bad data length %d, expected %d", len(data), Bits/8)
	}
	*v = FromBEBytes[E]([4]byte(data))
	return nil
}

// MarshalJSON marshals v with its significand and exponent, like `{"m":300,"e":-8}`.
func (v Value[E]) MarshalJSON() ([]byte, error) {
	raw, e := split(v)
	b := make([]byte, 0, maxJSONLen)
	b = append(b, jsonParts[0]...)
	b = strconv.AppendInt(b, int64(raw), 10)
	b = append(b, jsonParts[1]...)
	b = strconv.AppendInt(b, int64(e), 10)
	return append(b, jsonParts[2]...), nil
}

// UnmarshalJSON unmarshals an object, like `{"m":300,"e":-8}`, or a significand, like `300`.
// The exponent can be omitted, but if it is present, it must be equal to E.
func (v *Value[E]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case 'n': // null is a no-op, like in encoding/json.
		if string(data) == "null" {
			return nil
		}
		return fmt.Errorf("unexpected json %q", data)
	case '{':
		var me meValue
		if err := json.Unmarshal(data, &me); err != nil {
			return err
		}
		value, err := fromME[E](me)
		if err != nil {
			return err
		}
		*v = value
	default:
		var significand int32
		if err := json.Unmarshal(data, &significand); err != nil {
			return err
		}
		*v = New[E](significand)
	}
	return nil
}

// MarshalYAML marshals v as a mapping with 'm' and 'e' keys.
func (v Value[E]) MarshalYAML() (interface{}, error) {
	return v.toME(), nil
}

// UnmarshalYAML unmarshals a mapping with 'm' and optional 'e' keys, or a significand.
func (v *Value[E]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var me meValue
		if err := node.Decode(&me); err != nil {
			return err
		}
		value, err := fromME[E](me)
		if err != nil {
			return err
		}
		*v = value
	case yaml.ScalarNode:
		var significand int32
		if err := node.Decode(&significand); err != nil {
			return err
		}
		*v = New[E](significand)
	default:
		return fmt.Errorf("unexpected yaml node at line %d", node.Line)
	}
	return nil
}
