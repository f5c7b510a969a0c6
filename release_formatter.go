package launchtoml

import (
	"fmt"
	"strings"
)

// ReleaseFormatter renders a process list as the default_process_types YAML
// document consumed by release scripts.
type ReleaseFormatter struct{}

func NewReleaseFormatter() ReleaseFormatter {
	return ReleaseFormatter{}
}

// Format produces the YAML document for the given processes, one line per
// process in list order. Commands are written verbatim, never escaped or
// wrapped, so the output stays byte-stable for existing consumers. An empty
// list formats to an empty string with no document header.
func (f ReleaseFormatter) Format(processes ProcessList) string {
	if len(processes) == 0 {
		return ""
	}

	var document strings.Builder
	document.WriteString("---\ndefault_process_types:\n")
	for _, process := range processes {
		fmt.Fprintf(&document, "  %s: %s\n", process.Type, process.Command)
	}

	return document.String()
}
