package launchtoml

import (
	"os"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

// processMarker is the table-array header that introduces each process
// declaration in a launch.toml file.
const processMarker = "[[processes]]"

var (
	typePattern    = regexp.MustCompile(`type\s*=\s*["']([^"']+)["']`)
	commandPattern = regexp.MustCompile(`(?s)command\s*=\s*\[(.*?)\]`)
	literalPattern = regexp.MustCompile(`["']([^"']*)["']`)
)

// Process is one resolved process declaration: its type label and the
// reconstructed command line.
type Process struct {
	Type    string
	Command string
}

// ProcessList holds processes in the order their types first appeared.
// Re-declaring a type keeps its position but replaces its command.
type ProcessList []Process

func (l ProcessList) Lookup(processType string) (string, bool) {
	for _, process := range l {
		if process.Type == processType {
			return process.Command, true
		}
	}

	return "", false
}

func (l ProcessList) put(processType, command string) ProcessList {
	for i, process := range l {
		if process.Type == processType {
			l[i].Command = command
			return l
		}
	}

	return append(l, Process{Type: processType, Command: command})
}

type LaunchTOMLParser struct{}

func NewLaunchTOMLParser() LaunchTOMLParser {
	return LaunchTOMLParser{}
}

// ParseProcesses resolves the [[processes]] entries declared in the
// launch.toml at the given path. Blocks missing a type, missing a command
// array, or carrying an empty command array contribute no entry. A missing
// file resolves to an empty list rather than an error.
//
// Matching is deliberately permissive rather than a full TOML parse: the
// first textual type and command assignments in a block win, wherever they
// occur, and command arrays may span multiple lines.
func (p LaunchTOMLParser) ParseProcesses(path string) (ProcessList, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var processes ProcessList
	for _, block := range processBlocks(string(contents)) {
		typeMatch := typePattern.FindStringSubmatch(block)
		if typeMatch == nil {
			continue
		}

		commandMatch := commandPattern.FindStringSubmatch(block)
		if commandMatch == nil {
			continue
		}

		parts := commandLiterals(commandMatch[1])
		if len(parts) == 0 {
			continue
		}

		processes = processes.put(typeMatch[1], reconstructCommand(parts))
	}

	return processes, nil
}

// processBlocks splits the file text on the [[processes]] marker, one block
// per declaration, dropping any text before the first occurrence.
func processBlocks(contents string) []string {
	return strings.Split(contents, processMarker)[1:]
}

// commandLiterals extracts the quoted elements of a command array in order,
// ignoring commas, whitespace, and anything else between them.
func commandLiterals(array string) []string {
	var literals []string
	for _, match := range literalPattern.FindAllStringSubmatch(array, -1) {
		literals = append(literals, match[1])
	}

	return literals
}

// reconstructCommand turns the command array elements into a single command
// line. A bash -c invocation is unwrapped to its embedded script verbatim;
// anything else is re-quoted so that shell word-splitting reproduces the
// original elements exactly.
func reconstructCommand(parts []string) string {
	if len(parts) >= 3 && parts[0] == "bash" && parts[1] == "-c" {
		return parts[2]
	}

	return shellquote.Join(parts...)
}
