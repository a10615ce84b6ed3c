package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	// Set properties of the predefined Logger, including
	// the log entry prefix and a flag to disable printing
	// the time, source file, and line number.
	log.SetPrefix("leangains: ")
	log.SetFlags(0)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is one calculator update: decode the current state, apply the edits
// given on the command line, derive, and print the result with a new link.
func run(args []string, stdout io.Writer) error {
	var f cliFlags
	fs := newFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(fs)
	if err != nil {
		return err
	}

	token := cfg.Data
	if f.link != "" {
		token = tokenFromLink(f.link)
	}
	state, err := parseState(token)
	if err != nil {
		log.Printf("[decode] using defaults for unreadable fields: %v", err)
	}

	edits, err := f.edits(fs)
	if err != nil {
		return err
	}
	state = applyEdits(state, edits...)

	derived := derive(state)
	encoded := cfg.encodeFor(state)
	link := shareLink(cfg.ShareURL, encoded)

	if cfg.JSON {
		return renderJSON(stdout, report{
			Profile: newProfileView(state.userProfile),
			Derived: derived,
			Token:   encoded,
			Link:    link,
		})
	}
	return renderText(stdout, state, derived, link)
}
