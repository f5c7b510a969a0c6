package main

import (
	"fmt"
	"io"
	"os"

	"github.com/paketo-buildpacks/launchtoml"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := launchtoml.NewLogEmitter(stderr)

	if len(args) != 3 && len(args) != 4 {
		logger.Usage()
		return 1
	}

	path, mode := args[1], args[2]

	if _, err := os.Stat(path); err != nil {
		return 1
	}

	processes, err := launchtoml.NewLaunchTOMLParser().ParseProcesses(path)
	if err != nil {
		// An unreadable file resolves to an empty process list.
		processes = nil
	}

	switch {
	case mode == "--yaml":
		fmt.Fprint(stdout, launchtoml.NewReleaseFormatter().Format(processes))
		return 0

	case mode == "--process" && len(args) == 4:
		command, ok := processes.Lookup(args[3])
		if !ok || command == "" {
			return 1
		}

		fmt.Fprintln(stdout, command)
		return 0

	default:
		logger.Usage()
		return 1
	}
}
