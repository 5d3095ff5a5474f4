package version

import (
	"fmt"
	"runtime/debug"
)

// FromBuildInfo describes the running binary: its module version when installed with go install,
// otherwise the VCS revision it was built from.
func FromBuildInfo() (version string) {
	version = "unavailable"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	var revision, ts string

	dirty := false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			ts = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		default:
			continue
		}
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	if revision == "" {
		return version
	}

	if dirty {
		revision += " (modified)"
	}

	if ts == "" {
		return fmt.Sprintf("devel, revision %s", revision)
	}

	return fmt.Sprintf("devel, revision %s at %s", revision, ts)
}
