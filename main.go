package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cinema-hall-cli/prompt"
	"cinema-hall-cli/tui"
)

const appName = "cinema-hall-cli"

var (
	version = "dev"
	commit  = "none"
)

type runMode int

const (
	modeTUI runMode = iota
	modePlain
	modeExit
)

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [--plain] [--version]\n", appName)
	fmt.Fprintln(out, "  --plain   run the line-oriented prompt session instead of the TUI")
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

func handleArgs(args []string) runMode {
	mode := modeTUI
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			printUsage(os.Stdout)
			return modeExit
		case "-v", "--version", "version":
			printVersion()
			return modeExit
		case "-p", "--plain", "plain":
			mode = modePlain
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}
	return mode
}

func main() {
	switch handleArgs(os.Args[1:]) {
	case modeExit:
		return
	case modePlain:
		if err := prompt.Run(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		if _, err := tea.NewProgram(tui.New(), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
