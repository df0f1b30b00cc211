package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/andareed/clipcmd/clipboard"
	"github.com/andareed/clipcmd/commands"
	"github.com/andareed/clipcmd/logging"
	"github.com/andareed/clipcmd/picker"
	"github.com/andareed/clipcmd/registry"
	"github.com/andareed/clipcmd/timeconv"
)

const usage = `Usage: clipcmd [--debug debug.log] [--format FMT] [--print] <command>

Transforms the clipboard text with <command> and copies the result back.
Run "clipcmd h" to copy the list of commands; run without a command on a
terminal to pick one interactively.

Flags:
`

var (
	logFile   = flag.String("debug", "", "Write Debug Logs to file")
	formatArg = flag.String("format", "", "strftime pattern for to_utc/to_mountain_time input, e.g. \"%d/%m/%Y %H:%M\"")
	printFlag = flag.Bool("print", false, "also print the result to stdout")
)

const (
	exitOK             = 0
	exitError          = 1
	exitUnknownCommand = 2
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		return exitOK
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("Failed to setup logging %v", err)
		return exitError
	}
	defer cleanup()

	log.Println("clipcmd: Started")

	conv, err := timeconv.NewConverter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "clipcmd:", err)
		return exitError
	}
	reg := commands.NewRegistry(conv)

	token, err := commandToken(reg, flag.Args())
	if err != nil {
		if errors.Is(err, picker.ErrCanceled) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, "clipcmd:", err)
		flag.Usage()
		return exitError
	}

	var echo io.Writer
	if *printFlag {
		echo = os.Stdout
	}

	err = run(reg, token, clipboard.New(), registry.Options{Format: *formatArg}, echo)
	if err == nil {
		log.Printf("clipcmd: %s done", token)
		return exitOK
	}

	logging.Errorf("clipcmd: %v", err)
	fmt.Fprintln(os.Stderr, "clipcmd:", err)

	var unknown *UnknownCommandError
	if errors.As(err, &unknown) {
		return exitUnknownCommand
	}
	return exitError
}

// commandToken takes the single positional argument, or asks the picker
// when none was given and stdin is a terminal.
func commandToken(reg *registry.Registry, args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case len(args) > 1:
		return "", fmt.Errorf("expected one command, got %d arguments", len(args))
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("missing command")
	}
	return picker.Run(reg.Commands(), os.Stdin, os.Stderr)
}
