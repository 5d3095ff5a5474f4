package render

import "github.com/kxue43/gh-template/jsonstream"

type APIError struct {
	Body jsonstream.Value
}

// AllowList names the members of a successful response worth showing.
var AllowList = []string{
	".id",
	".clone_url",
	".full_name",
	".name",
	".owner.login",
	".ssh_url",
	".private",
	".default_branch",
}

func (e *APIError) Error() string {
	if m, ok := e.Body.Get("message"); ok && m.Kind == jsonstream.String {
		return "API error: " + m.Str
	}

	return "API error"
}
