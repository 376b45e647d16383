package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/grovetools/viewpick/version.Version=..." at build time.
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information of this binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// IsDev reports whether this is an unreleased build.
func (i Info) IsDev() bool {
	return i.Version == "dev"
}

// String formats the build information as aligned lines.
func (i Info) String() string {
	lines := [][2]string{
		{"Commit", i.Commit},
		{"Branch", i.Branch},
		{"Built", i.BuildDate},
		{"Go", i.GoVersion},
		{"Platform", i.Platform},
	}
	out := ""
	for n, l := range lines {
		if n > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("  %-9s %s", l[0]+":", l[1])
	}
	return out
}
