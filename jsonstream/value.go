// Package jsonstream decodes JSON into a tree that keeps object members in document order,
// and trims such trees down to an allow-list of dotted paths.
package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type (
	Kind byte

	Value struct {
		Str     string
		Num     json.Number
		Elems   []Value
		Members []Member
		Kind    Kind
		Bool    bool
	}

	Member struct {
		Key   string
		Value Value
	}
)

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var ErrPath = errors.New("invalid path")

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

func (v Value) IsContainer() bool {
	return v.Kind == Array || v.Kind == Object
}

// Get returns the value of the member named key. With duplicate keys the last one wins.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != Object {
		return Value{}, false
	}

	for i := len(v.Members) - 1; i >= 0; i-- {
		if v.Members[i].Key == key {
			return v.Members[i].Value, true
		}
	}

	return Value{}, false
}

// Has reports whether the object has a member named key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)

	return ok
}

// Lookup follows a path such as ".owner.login" through nested objects.
func (v Value) Lookup(path string) (Value, bool) {
	keys, err := SplitPath(path)
	if err != nil {
		return Value{}, false
	}

	var ok bool

	for _, key := range keys {
		if v, ok = v.Get(key); !ok {
			return Value{}, false
		}
	}

	return v, true
}

// Text returns the scalar as it would appear unquoted: strings as is, numbers in source form.
func (v Value) Text() string {
	switch v.Kind {
	case Null:
		return "null"
	case Bool:
		if v.Bool {
			return "true"
		}

		return "false"
	case Number:
		return v.Num.String()
	case String:
		return v.Str
	default:
		return ""
	}
}

// SplitPath turns ".a.b" into its keys. Keys may contain spaces and may be empty, as in ".a..b".
func SplitPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, ".") {
		return nil, fmt.Errorf(`%w: %q must start with the dot character "."`, ErrPath, path)
	}

	if strings.HasSuffix(path, ".") {
		return nil, fmt.Errorf(`%w: %q must not end with the dot character "."`, ErrPath, path)
	}

	return strings.Split(path, ".")[1:], nil
}
