// Package gh runs the GitHub CLI to generate a repository from a template.
package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/kxue43/gh-template/repo"
)

type (
	Logger interface {
		Printf(string, ...any)
		Print(...any)
	}

	// Runner executes name with args and returns everything written to standard output and standard error.
	Runner interface {
		Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
	}

	Client struct {
		logger Logger
		runner Runner
		path   string
	}

	Option func(*Client)

	execRunner struct{}

	nopLogger struct{}
)

var ErrInvocation = errors.New("gh invocation failure")

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}

func (nopLogger) Printf(string, ...any) {}

func (nopLogger) Print(...any) {}

func WithRunner(r Runner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

func WithLogger(l Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a Client that runs the gh executable found at path, or on PATH when path is a bare name.
func New(path string, opts ...Option) *Client {
	c := Client{path: path, runner: execRunner{}, logger: nopLogger{}}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// Endpoint is the REST path that generates a repository from the template at link.
func Endpoint(link string) string {
	return "/repos/" + strings.Trim(link, "/") + "/generate"
}

// Args returns the arguments of the gh call, each field passed with its own -F.
func Args(link string, req repo.Request) []string {
	args := []string{"api", Endpoint(link), "-X", "POST"}

	for _, field := range req.Fields() {
		args = append(args, "-F", field)
	}

	return args
}

// Generate asks the platform to create the repository described by req from the template at link
// and returns the response body as written by gh.
//
// gh exits non-zero when the platform answers with an error status but still prints the error body,
// so a non-zero exit is not an error here. Non-nil returned error wraps [ErrInvocation] and means gh
// could not be run at all.
func (c *Client) Generate(ctx context.Context, link string, req repo.Request) (io.Reader, error) {
	args := Args(link, req)

	c.logger.Printf("running %s %s", c.path, strings.Join(args, " "))

	stdout, stderr, err := c.runner.Run(ctx, c.path, args...)

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		c.logger.Printf("%s exited with status %d", c.path, exitErr.ExitCode())
	default:
		return nil, fmt.Errorf("%w: failed to run %s: %s", ErrInvocation, c.path, err.Error())
	}

	if len(stderr) > 0 {
		c.logger.Print(strings.TrimSpace(string(stderr)))
	}

	return bytes.NewReader(stdout), nil
}
