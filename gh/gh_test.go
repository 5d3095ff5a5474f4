package gh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxue43/gh-template/repo"
)

type (
	fakeRunner struct {
		err    error
		name   string
		stdout string
		stderr string
		args   []string
	}

	recorder struct {
		lines []string
	}
)

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name, f.args = name, args

	return []byte(f.stdout), []byte(f.stderr), f.err
}

func (r *recorder) Printf(format string, a ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, a...))
}

func (r *recorder) Print(a ...any) {
	r.lines = append(r.lines, fmt.Sprint(a...))
}

func TestEndpoint(t *testing.T) {
	var tests = []struct {
		link     string
		expected string
	}{
		{link: "acme/go-service-template", expected: "/repos/acme/go-service-template/generate"},
		{link: "/acme/go-service-template/", expected: "/repos/acme/go-service-template/generate"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Endpoint(test.link), "link %q", test.link)
	}
}

func TestArgs(t *testing.T) {
	req := repo.Request{Name: "demo", Description: "A demo"}

	assert.Equal(t,
		[]string{
			"api", "/repos/acme/tpl/generate", "-X", "POST",
			"-F", "name=demo", "-F", "description=A demo", "-F", "private=false",
		},
		Args("acme/tpl", req),
		"an empty owner should not be sent",
	)

	req.Owner, req.Private = "acme", true

	assert.Equal(t,
		[]string{
			"api", "/repos/acme/tpl/generate", "-X", "POST",
			"-F", "name=demo", "-F", "description=A demo", "-F", "private=true", "-F", "owner=acme",
		},
		Args("acme/tpl", req),
	)
}

func TestGenerate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		runner := &fakeRunner{stdout: `{"id":1}`}

		out, err := New("/opt/bin/gh", WithRunner(runner)).Generate(context.Background(), "acme/tpl", repo.Request{Name: "demo"})
		require.NoError(t, err)

		body, err := io.ReadAll(out)
		require.NoError(t, err)

		assert.Equal(t, `{"id":1}`, string(body))
		assert.Equal(t, "/opt/bin/gh", runner.name)
		assert.Equal(t, Args("acme/tpl", repo.Request{Name: "demo"}), runner.args)
	})

	t.Run("Cannot run", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("boom")}

		_, err := New("gh", WithRunner(runner)).Generate(context.Background(), "acme/tpl", repo.Request{})

		assert.ErrorIs(t, err, ErrInvocation)
	})

	t.Run("Missing executable", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "gh")

		_, err := New(missing).Generate(context.Background(), "acme/tpl", repo.Request{})

		assert.ErrorIs(t, err, ErrInvocation)
	})

	t.Run("Error status", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("needs a POSIX shell")
		}

		script := filepath.Join(t.TempDir(), "gh")

		err := os.WriteFile(script, []byte("#!/bin/sh\n"+
			"echo '{\"message\":\"Not Found\",\"status\":\"404\"}'\n"+
			"echo 'gh: Not Found (HTTP 404)' >&2\n"+
			"exit 1\n"), 0o700)
		require.NoError(t, err)

		var logs recorder

		out, err := New(script, WithLogger(&logs)).Generate(context.Background(), "acme/tpl", repo.Request{Name: "demo"})
		require.NoError(t, err, "a non-zero exit should still yield the body")

		body, err := io.ReadAll(out)
		require.NoError(t, err)

		assert.JSONEq(t, `{"message":"Not Found","status":"404"}`, string(body))
		assert.Contains(t, logs.lines, script+" exited with status 1")
		assert.Contains(t, logs.lines, "gh: Not Found (HTTP 404)")
	})
}
