package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/kxue43/gh-template/config"
	"github.com/kxue43/gh-template/gh"
	"github.com/kxue43/gh-template/jsonstream"
	"github.com/kxue43/gh-template/prompt"
	"github.com/kxue43/gh-template/render"
	"github.com/kxue43/gh-template/repo"
)

type (
	// optional is a string flag that remembers whether it was given, so that an empty value
	// still skips the prompt.
	optional struct {
		Value string
		Set   bool
	}

	CLI struct {
		Template    optional         `short:"t" placeholder:"NAME" help:"Configured template name, or owner/repo of any template repository."`
		Name        optional         `short:"n" placeholder:"NAME" help:"Name of the new repository."`
		Description optional         `placeholder:"TEXT" help:"Description of the new repository."`
		Owner       optional         `short:"o" placeholder:"OWNER" help:"Owner of the new repository. Defaults to the authenticated account."`
		Config      string           `short:"c" type:"path" env:"GH_TEMPLATE_CONFIG" help:"Template config file. Defaults to config.yaml beside the executable."`
		GH          string           `name:"gh" default:"gh" env:"GH_PATH" help:"GitHub CLI executable."`
		Private     bool             `short:"p" help:"Make the new repository private without asking."`
		Web         bool             `help:"Open the new repository in the browser."`
		NoColor     bool             `help:"Print the response without colors. Also set by a non-empty NO_COLOR."`
		Verbose     bool             `short:"v" help:"Log the gh invocation and its standard error."`
		Version     kong.VersionFlag `help:"Show version information and quit."`
	}

	// session holds the streams a run talks to.
	session struct {
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
		open   func(url string) error
		opts   []prompt.Option
	}
)

func (o *optional) Decode(ctx *kong.DecodeContext) error {
	o.Set = true

	return ctx.Scan.PopValueInto("value", &o.Value)
}

func (o optional) ptr() *string {
	if !o.Set {
		return nil
	}

	v := o.Value

	return &v
}

func (c *CLI) flags() repo.Flags {
	return repo.Flags{
		Template:    c.Template.ptr(),
		Name:        c.Name.ptr(),
		Description: c.Description.ptr(),
		Owner:       c.Owner.ptr(),
		Private:     c.Private,
	}
}

func (c *CLI) Run(ctx context.Context, logger *log.Logger) error {
	s := session{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		open:   browser.OpenURL,
		opts:   []prompt.Option{prompt.WithTerminalCheck()},
	}

	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}

	if path := os.Getenv("GH_TEMPLATE_DEBUG_TUI"); path != "" {
		dump, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open TUI dump file %q: %w", path, err)
		}

		defer func() { _ = dump.Close() }()

		s.opts = append(s.opts, prompt.WithDump(dump))
	}

	return c.run(ctx, logger, s)
}

func (c *CLI) run(ctx context.Context, logger *log.Logger, s session) (err error) {
	path := c.Config
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// An interrupt ends a pending question as well as the gh call.
	promptOpts := append([]prompt.Option{prompt.WithProgramOptions(tea.WithContext(ctx))}, s.opts...)

	resolver := repo.NewResolver(cfg, prompt.New(s.stdin, s.stderr, promptOpts...))

	link, req, err := resolver.Resolve(c.flags())
	if err != nil {
		return err
	}

	ghOpts := []gh.Option{}
	if c.Verbose {
		ghOpts = append(ghOpts, gh.WithLogger(logger))
	}

	body, err := gh.New(c.GH, ghOpts...).Generate(ctx, link, req)
	if err != nil {
		return err
	}

	resp, err := jsonstream.Decode(body)
	if err != nil {
		return fmt.Errorf("failed to read the gh response: %w", err)
	}

	var renderOpts []render.Option
	if c.NoColor {
		renderOpts = append(renderOpts, render.WithPlain())
	}

	var apiErr *render.APIError

	err = render.New(s.stdout, renderOpts...).Report(resp)

	switch {
	case errors.As(err, &apiErr):
		// The refusal has been printed in full.
		if c.Verbose {
			logger.Print(apiErr.Error())
		}

		return nil
	case err != nil:
		return err
	}

	if c.Web {
		if err := s.open(webURL(resp)); err != nil {
			logger.Printf("failed to open the browser: %s", err.Error())
		}
	}

	return nil
}

// webURL is the page of the created repository.
func webURL(resp jsonstream.Value) string {
	if v, ok := resp.Lookup(".html_url"); ok && v.Kind == jsonstream.String && v.Str != "" {
		return v.Str
	}

	if v, ok := resp.Lookup(".full_name"); ok && v.Kind == jsonstream.String {
		return "https://github.com/" + v.Str
	}

	return "https://github.com"
}
