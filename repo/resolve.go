// Package repo decides what repository to create, taking each value from a flag when one was given
// and asking the operator otherwise.
package repo

import (
	"strconv"

	"github.com/kxue43/gh-template/config"
)

type (
	// Request holds the settings of the repository to generate. It is built once per run.
	Request struct {
		Name        string
		Description string
		Owner       string
		Private     bool
	}

	// Flags carries the values given on the command line. A nil pointer means the flag was not given;
	// a pointer to the empty string is a given, empty value.
	Flags struct {
		Template    *string
		Name        *string
		Description *string
		Owner       *string
		Private     bool
	}

	Prompter interface {
		Text(label, placeholder string) (string, error)
		Confirm(label string) (bool, error)
		Select(label string, options []string) (string, error)
	}

	Resolver struct {
		cfg      *config.Config
		prompter Prompter
	}
)

const (
	templateLabel    = "Template:"
	nameLabel        = "Name:"
	descriptionLabel = "Description:"
	privateLabel     = "Private (y/n):"
	ownerLabel       = "Owner:"

	// Shown for an empty owner, which the platform reads as the authenticated account.
	ownerPlaceholder = "You"
)

func NewResolver(cfg *config.Config, prompter Prompter) *Resolver {
	return &Resolver{cfg: cfg, prompter: prompter}
}

func (r *Resolver) text(flag *string, label, placeholder string) (string, error) {
	if flag != nil {
		return *flag, nil
	}

	return r.prompter.Text(label, placeholder)
}

// Template returns the owner/repo link of the template to generate from.
// The flag, or else the operator's pick among the configured names, is looked up by name;
// a value that names no template is used as the link itself.
func (r *Resolver) Template(flag *string) (link string, err error) {
	choice := ""

	if flag != nil {
		choice = *flag
	} else if choice, err = r.prompter.Select(templateLabel, r.cfg.Names()); err != nil {
		return "", err
	}

	return r.cfg.Link(choice), nil
}

// Request resolves name, description, visibility and owner, in that order.
func (r *Resolver) Request(flags Flags) (req Request, err error) {
	if req.Name, err = r.text(flags.Name, nameLabel, ""); err != nil {
		return Request{}, err
	}

	if req.Description, err = r.text(flags.Description, descriptionLabel, ""); err != nil {
		return Request{}, err
	}

	req.Private = flags.Private

	if !req.Private {
		if req.Private, err = r.prompter.Confirm(privateLabel); err != nil {
			return Request{}, err
		}
	}

	if req.Owner, err = r.text(flags.Owner, ownerLabel, ownerPlaceholder); err != nil {
		return Request{}, err
	}

	return req, nil
}

// Resolve settles the template link first and the request second.
// Prompt failures are returned as they are.
func (r *Resolver) Resolve(flags Flags) (link string, req Request, err error) {
	if link, err = r.Template(flags.Template); err != nil {
		return "", Request{}, err
	}

	if req, err = r.Request(flags); err != nil {
		return "", Request{}, err
	}

	return link, req, nil
}

// Fields renders the request as the name=value pairs of the generate call.
// The owner is left out when empty so that the platform picks the authenticated account.
func (req Request) Fields() []string {
	fields := []string{
		"name=" + req.Name,
		"description=" + req.Description,
		"private=" + strconv.FormatBool(req.Private),
	}

	if req.Owner != "" {
		fields = append(fields, "owner="+req.Owner)
	}

	return fields
}
