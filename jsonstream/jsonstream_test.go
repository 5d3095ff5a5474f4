package jsonstream

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Zip(first []string, second []string) iter.Seq2[string, string] {
	n := min(len(first), len(second))

	return func(yield func(string, string) bool) {
		for i := range n {
			if !yield(first[i], second[i]) {
				return
			}
		}
	}
}

func mustDecode(t *testing.T, contents string) Value {
	t.Helper()

	v, err := Decode(strings.NewReader(contents))
	require.NoError(t, err, "should be able to decode %s", contents)

	return v
}

func keys(v Value) []string {
	out := make([]string, len(v.Members))

	for i := range v.Members {
		out[i] = v.Members[i].Key
	}

	return out
}

func TestDecode(t *testing.T) {
	v := mustDecode(t, `
	{
		"zeta": 1,
		"alpha": [1.50, "two", null, false],
		"mid": {"y": true, "x": {}},
		"big": 12345678901234567890
	}
	`)

	require.Equal(t, Object, v.Kind)
	assert.Equal(t, []string{"zeta", "alpha", "mid", "big"}, keys(v), "members should keep document order")

	alpha, ok := v.Get("alpha")
	require.True(t, ok)
	require.Equal(t, Array, alpha.Kind)
	require.Len(t, alpha.Elems, 4)

	assert.Equal(t, "1.50", alpha.Elems[0].Text(), "numbers should keep their literal text")
	assert.Equal(t, "two", alpha.Elems[1].Text())
	assert.Equal(t, Null, alpha.Elems[2].Kind)
	assert.Equal(t, "false", alpha.Elems[3].Text())

	big, _ := v.Get("big")
	assert.Equal(t, "12345678901234567890", big.Text(), "large integers should not lose precision")

	mid, _ := v.Get("mid")
	assert.Equal(t, []string{"y", "x"}, keys(mid))
}

func TestDecodeMalformed(t *testing.T) {
	var tests = []string{
		"",
		"   \n",
		`{"id": 1`,
		`{"id": 1} {"id": 2}`,
		`{"id": 1}x`,
		`gh: Not Found (HTTP 404)`,
		`[1, 2,]`,
	}

	for _, contents := range tests {
		_, err := Decode(strings.NewReader(contents))
		assert.ErrorIs(t, err, ErrMalformed, "input %q should be rejected", contents)
	}
}

func TestLookup(t *testing.T) {
	var tests = []struct {
		contents string
		paths    []string
		expected []string
	}{
		{
			contents: `
			{
				"a": 1,
				"b": [1, 2, 3],
				"c": null,
				"d": {
					"e": "target"
				},
				"f": "x"
			}
			`,
			paths:    []string{".d.e", ".f", ".a", ".c"},
			expected: []string{"target", "x", "1", "null"},
		},
		{
			contents: `
			{
				"d": {
					"e f": {
						"g": "z"
					},
					"": {
						"s": "here"
					}
				}
			}
			`,
			paths:    []string{".d.e f.g", ".d..s"},
			expected: []string{"z", "here"},
		},
	}

	for _, test := range tests {
		v := mustDecode(t, test.contents)

		for path, expected := range Zip(test.paths, test.expected) {
			found, ok := v.Lookup(path)
			require.True(t, ok, "path %q should resolve", path)

			assert.Equal(t, expected, found.Text(), "value at %q", path)
		}
	}

	v := mustDecode(t, `{"a": {"b": 1}, "c": "x"}`)

	for _, path := range []string{".a.z", ".c.d", "a.b", ".a."} {
		_, ok := v.Lookup(path)
		assert.False(t, ok, "path %q should not resolve", path)
	}
}

func TestFilter(t *testing.T) {
	allowList := []string{".id", ".clone_url", ".full_name", ".name", ".owner.login", ".ssh_url", ".private", ".default_branch"}

	t.Run("Response allow-list", func(t *testing.T) {
		v := mustDecode(t, `{
			"extra": "drop-me",
			"id": 42,
			"name": "demo",
			"owner": {"id": 99, "login": "alice", "type": "User"},
			"clone_url": "https://x/demo.git",
			"nested": {"login": "nope"},
			"ssh_url": "git@x:demo.git"
		}`)

		filtered, err := Filter(v, allowList...)
		require.NoError(t, err)

		expected := mustDecode(t, `{
			"id": 42,
			"name": "demo",
			"owner": {"login": "alice"},
			"clone_url": "https://x/demo.git",
			"ssh_url": "git@x:demo.git"
		}`)

		assert.Equal(t, expected, filtered, "only allow-listed members should remain, in their original order")

		again, err := Filter(filtered, allowList...)
		require.NoError(t, err)

		assert.Equal(t, filtered, again, "filtering should be idempotent")
	})

	t.Run("Non-object intermediate", func(t *testing.T) {
		v := mustDecode(t, `{"id": 1, "owner": "alice"}`)

		filtered, err := Filter(v, allowList...)
		require.NoError(t, err)

		assert.Equal(t, []string{"id"}, keys(filtered), "owner should be dropped when it cannot hold a login")
	})

	t.Run("Whole member wins over nested path", func(t *testing.T) {
		v := mustDecode(t, `{"owner": {"id": 99, "login": "alice"}}`)

		filtered, err := Filter(v, ".owner.login", ".owner")
		require.NoError(t, err)

		assert.Equal(t, v, filtered)
	})

	t.Run("Invalid path", func(t *testing.T) {
		_, err := Filter(mustDecode(t, `{}`), "id")

		assert.ErrorIs(t, err, ErrPath)
	})

	t.Run("Arrays pass through", func(t *testing.T) {
		v := mustDecode(t, `[{"id": 1, "x": 2}]`)

		filtered, err := Filter(v, ".id")
		require.NoError(t, err)

		assert.Equal(t, v, filtered)
	})
}
