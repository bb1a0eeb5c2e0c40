// Package version reports build information for devmood
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information for a binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the linked version, filling gaps from the module build info.
func Current() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return info.withBuildInfo(bi)
}

func (v Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if v.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if v.Commit == "unknown" && setting.Value != "" {
				v.Commit = setting.Value
			}
		case "vcs.time":
			if v.BuildDate == "unknown" && setting.Value != "" {
				v.BuildDate = setting.Value
			}
		}
	}
	return v
}

// Short returns the version with an abbreviated commit for dev builds.
func (v Info) Short() string {
	if v.Version != "dev" || v.Commit == "unknown" {
		return v.Version
	}
	commit := v.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return "dev-" + commit
}

// JSON returns the info as indented JSON
func (v Info) JSON() (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling version: %w", err)
	}
	return string(data), nil
}
