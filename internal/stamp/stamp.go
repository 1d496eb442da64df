// Package stamp prefixes each line of a stream with a formatted timestamp.
package stamp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/yiblet/dateform/internal/dateform"
)

const logModule = "stamp"

// Options captures the configuration used when running the stamping workflow.
type Options struct {
	// Template is rendered for every line; empty means the dialect default.
	Template string
	Input    string
	Output   string
	// JSONKey switches to JSONL output with the stamp stored under this key.
	JSONKey string
	// Location is the zone stamps are shown in; nil keeps the clock's zone.
	Location *time.Location
}

// Run executes the stamping workflow using the system clock.
func Run(opts Options, dialect *dateform.Dialect) error {
	return RunWithClock(opts, dialect, clockwork.NewRealClock())
}

// RunWithClock executes the stamping workflow with a provided clock.
func RunWithClock(opts Options, dialect *dateform.Dialect, clock clockwork.Clock) (err error) {
	tpl := opts.Template
	if tpl == "" {
		tpl = dialect.DefaultTemplate()
	}
	layout := dialect.Compile(tpl)

	reader, writer, cleanup, err := createIO(opts.Input, opts.Output)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var em emitter
	if opts.JSONKey != "" {
		em = newJSONEmitter(layout, writer, opts.JSONKey)
	} else {
		em = newTextEmitter(layout, writer)
	}
	return processLines(reader, em, clock, opts.Location)
}

// createIO wires up the appropriate reader and writer based on the provided
// paths and returns a cleanup function that closes any opened files.
func createIO(in string, out string) (io.Reader, io.Writer, func() error, error) {
	var inFile = os.Stdin
	var outFile = os.Stdout

	mustClose := [](func() error){}
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open input file: %w", err)
		}
		inFile = f
		mustClose = append(mustClose, inFile.Close)
	}

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			for _, close := range mustClose {
				if err := close(); err != nil {
					return nil, nil, nil, err
				}
			}
			return nil, nil, nil, fmt.Errorf("failed to open output file: %w", err)
		}
		outFile = f
		mustClose = append(mustClose, outFile.Close)
	}
	return inFile, outFile, func() error {
		errs := []error{}
		for _, close := range mustClose {
			if err := close(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}, nil
}

type lineRecord struct {
	text       string
	hasNewline bool
}

// processLines reads reader line by line and hands each line, with the time
// it was read shown in loc, to em.
func processLines(reader io.Reader, em emitter, clock clockwork.Clock, loc *time.Location) error {
	bufreader := bufio.NewReader(reader)
	count := 0

	for {
		line, err := bufreader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read line: %w", err)
		}

		if len(line) == 0 && errors.Is(err, io.EOF) {
			break
		}

		count++
		record := lineRecord{
			text:       strings.TrimSuffix(line, "\n"),
			hasNewline: strings.HasSuffix(line, "\n"),
		}
		now := clock.Now()
		if loc != nil {
			now = now.In(loc)
		}
		if err := em.emit(record, now); err != nil {
			return err
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	log.WithFields(log.Fields{"module": logModule, "lines": count}).Debug("stamped input")
	return nil
}
