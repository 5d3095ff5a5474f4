package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrMalformed = errors.New("malformed JSON")

func IsObjectStart(t json.Token) bool {
	if d, ok := t.(json.Delim); ok && d == '{' {
		return true
	}

	return false
}

func IsArrayStart(t json.Token) bool {
	if d, ok := t.(json.Delim); ok && d == '[' {
		return true
	}

	return false
}

func IsEndingDelim(t json.Token) bool {
	if d, ok := t.(json.Delim); ok && (d == '}' || d == ']') {
		return true
	}

	return false
}

// Decode reads exactly one JSON value from stream.
//
// Non-nil returned error wraps [ErrMalformed].
func Decode(stream io.Reader) (Value, error) {
	dec := json.NewDecoder(stream)
	dec.UseNumber()

	t, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: empty input", ErrMalformed)
	} else if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}

	v, err := decodeValue(dec, t)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: unexpected data after the top-level value", ErrMalformed)
	}

	return v, nil
}

func decodeValue(dec *json.Decoder, t json.Token) (Value, error) {
	switch {
	case IsObjectStart(t):
		return decodeObject(dec)
	case IsArrayStart(t):
		return decodeArray(dec)
	}

	switch tv := t.(type) {
	case nil:
		return Value{Kind: Null}, nil
	case bool:
		return Value{Kind: Bool, Bool: tv}, nil
	case json.Number:
		return Value{Kind: Number, Num: tv}, nil
	case string:
		return Value{Kind: String, Str: tv}, nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v at offset %d", t, dec.InputOffset())
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Value{Kind: Object, Members: []Member{}}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return Value{}, err
		}

		key, ok := t.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key at offset %d is not a string", dec.InputOffset())
		}

		if t, err = dec.Token(); err != nil {
			return Value{}, err
		}

		member, err := decodeValue(dec, t)
		if err != nil {
			return Value{}, err
		}

		obj.Members = append(obj.Members, Member{Key: key, Value: member})
	}

	// consume the closing '}' token
	if t, err := dec.Token(); err != nil {
		return Value{}, err
	} else if !IsEndingDelim(t) {
		return Value{}, fmt.Errorf("unterminated object at offset %d", dec.InputOffset())
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Value{Kind: Array, Elems: []Value{}}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return Value{}, err
		}

		elem, err := decodeValue(dec, t)
		if err != nil {
			return Value{}, err
		}

		arr.Elems = append(arr.Elems, elem)
	}

	// consume the closing ']' token
	if t, err := dec.Token(); err != nil {
		return Value{}, err
	} else if !IsEndingDelim(t) {
		return Value{}, fmt.Errorf("unterminated array at offset %d", dec.InputOffset())
	}

	return arr, nil
}
