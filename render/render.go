// Package render prints gh API responses as indented, colorized text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/kxue43/gh-template/jsonstream"
)

type (
	// Kind is the semantic class of a rendered token.
	Kind byte

	Renderer struct {
		w     io.Writer
		plain bool
	}

	Option func(*Renderer)
)

const (
	String Kind = iota
	Number
	Bool
	Error
	Null
	Key
)

const (
	indentMarker = "| "

	indentCode = color.FgBlack
	indexCode  = color.FgMagenta
)

var palette = [...]color.Attribute{
	String: color.FgGreen,
	Number: color.FgMagenta,
	Bool:   color.FgYellow,
	Error:  color.FgRed,
	Null:   color.FgMagenta,
	Key:    color.FgBlue,
}

// WithPlain turns coloring off.
func WithPlain() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

func New(w io.Writer, opts ...Option) *Renderer {
	r := Renderer{w: w}

	for _, opt := range opts {
		opt(&r)
	}

	return &r
}

// Code tags v with a raw terminal color code, bypassing the palette. Every tag is bold.
func (r *Renderer) Code(code color.Attribute, v any) string {
	c := color.New(color.Bold, code)

	// The package-level default depends on whether stdout is a terminal.
	if r.plain {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	return c.Sprint(v)
}

// Paint tags v with the color of its kind.
func (r *Renderer) Paint(k Kind, v any) string {
	return r.Code(palette[k], v)
}

func (r *Renderer) indent(depth int) string {
	if depth <= 0 {
		return ""
	}

	return r.Code(indentCode, strings.Repeat(indentMarker, depth))
}

// Inline renders a scalar. Containers render as the empty string.
func (r *Renderer) Inline(v jsonstream.Value) string {
	switch v.Kind {
	case jsonstream.Null:
		return r.Paint(Null, v.Text())
	case jsonstream.Bool:
		return r.Paint(Bool, v.Text())
	case jsonstream.Number:
		return r.Paint(Number, v.Text())
	case jsonstream.String:
		return r.Paint(String, v.Text())
	default:
		return ""
	}
}

// Block renders v over as many lines as it needs, starting depth levels deep.
func (r *Renderer) Block(v jsonstream.Value, depth int) string {
	var b strings.Builder

	r.block(&b, v, "", depth)

	return b.String()
}

func (r *Renderer) block(b *strings.Builder, v jsonstream.Value, prefix string, depth int) {
	switch v.Kind {
	case jsonstream.Array:
		for i, elem := range v.Elems {
			r.block(b, elem, r.Code(indexCode, i)+indentMarker, depth)
		}
	case jsonstream.Object:
		for _, member := range v.Members {
			b.WriteString(r.indent(depth))
			b.WriteString(r.Paint(Key, member.Key))
			b.WriteString(": ")

			if member.Value.IsContainer() {
				b.WriteByte('\n')
				r.block(b, member.Value, "", depth+1)

				continue
			}

			b.WriteString(r.Inline(member.Value))
			b.WriteByte('\n')
		}
	case jsonstream.Null:
		// Nulls never carry the index marker.
		b.WriteString(r.indent(depth))
		b.WriteString(r.Inline(v))
		b.WriteByte('\n')
	default:
		b.WriteString(r.indent(depth))
		b.WriteString(prefix)
		b.WriteString(r.Inline(v))
		b.WriteByte('\n')
	}
}

func repoLabel(resp jsonstream.Value) string {
	for _, path := range []string{".name", ".full_name"} {
		v, ok := resp.Lookup(path)
		if !ok {
			continue
		}

		if v.Kind == jsonstream.String {
			return strconv.Quote(v.Str)
		}

		return v.Text()
	}

	return ""
}

func (r *Renderer) cloneLine(b *strings.Builder, resp jsonstream.Value, path string) bool {
	v, ok := resp.Lookup(path)
	if !ok || v.Kind != jsonstream.String || v.Str == "" {
		return false
	}

	fmt.Fprintf(b, "%s %s %s\n", r.Code(color.FgGreen, "git"), r.Code(color.FgYellow, "clone"), r.Code(color.FgWhite, v.Str))

	return true
}

func (r *Renderer) success(b *strings.Builder, resp jsonstream.Value) error {
	filtered, err := jsonstream.Filter(resp, AllowList...)
	if err != nil {
		return fmt.Errorf("failed to apply the response allow-list: %w", err)
	}

	banner := "Repo Created"
	if label := repoLabel(resp); label != "" {
		banner = "Repo " + label + " Created"
	}

	b.WriteString(r.Code(color.FgGreen, banner))
	b.WriteString("\n\n")

	r.block(b, filtered, "", 0)

	b.WriteString("\n\n")
	b.WriteString(r.Code(color.FgMagenta, "To clone the repo use:"))
	b.WriteString("\n")

	ssh := r.cloneLine(b, resp, ".ssh_url")

	var https strings.Builder

	if r.cloneLine(&https, resp, ".clone_url") {
		if ssh {
			b.WriteString(r.Code(color.FgBlue, "or"))
			b.WriteString("\n")
		}

		b.WriteString(https.String())
	}

	return nil
}

func (r *Renderer) failure(b *strings.Builder, resp jsonstream.Value) {
	b.WriteString(r.Paint(Error, "Error Occurred"))
	b.WriteString("\n")

	r.block(b, resp, "", 1)
}

// Report prints a repository creation response. A response carrying an id is a success:
// it is trimmed to [AllowList] and followed by clone commands. Anything else is the platform
// refusing the request; its body is printed in full and returned as an [*APIError].
func (r *Renderer) Report(resp jsonstream.Value) error {
	var (
		b      strings.Builder
		result error
	)

	if resp.Has("id") {
		if err := r.success(&b, resp); err != nil {
			return err
		}
	} else {
		r.failure(&b, resp)

		result = &APIError{Body: resp}
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("failed to write the response report: %w", err)
	}

	return result
}
