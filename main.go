package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/alexflint/go-arg"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/yiblet/dateform/internal/config"
	"github.com/yiblet/dateform/internal/dateform"
	"github.com/yiblet/dateform/internal/dialects"
	"github.com/yiblet/dateform/internal/stamp"
)

type cliArgs struct {
	Template *string `arg:"positional" help:"Template of literal text and %-directives (defaults to the dialect's ISO-like template)"`
	Dialect  string  `arg:"-d,--dialect" default:"strf" help:"Template dialect: strf (%Y-%m-%d) or express (%YYYY-%MM-%DD)"`
	Config   string  `arg:"-c,--config" help:"TOML file extending the dialect with aliases, defaults and pad flags"`
	Date     string  `arg:"--date" help:"Date to format as RFC 3339 or @<unix seconds> (defaults to now; not with --stamp)"`
	Zone     string  `arg:"-z,--zone" help:"IANA zone to show the date or stamps in, e.g. America/New_York"`
	Stamp    bool    `arg:"-s,--stamp" help:"Prefix each input line with the formatted time it was read"`
	Input    string  `arg:"-i,--input" help:"Input file for --stamp (defaults to stdin)"`
	Output   string  `arg:"-o,--output" help:"Output file for --stamp (defaults to stdout)"`
	JSON     string  `arg:"--json" help:"With --stamp, emit JSONL with the stamp stored under this key"`
	Tokens   bool    `arg:"--tokens" help:"Print the parsed template instead of formatting it"`
	Verbose  bool    `arg:"-v,--verbose" help:"Log debug output to stderr"`
}

func (cliArgs) Description() string {
	return `dateform renders dates through %-directive templates.

Directive syntax: %[flags][width]code
  flags   -  no padding        _  pad with spaces     0  pad with zeros
          ^  upper case        #  lower case          :  colons in zone offsets (strf)
  width   pad width, e.g. %8Y; padding only happens through a pad flag or
          the code's default flag

Dialects:
  strf     one-letter codes: %Y %m %d %H %M %S %b %a %p %z %Z, aliases %c %F %T %D %r %R %x %X
  express  word codes: %YYYY %MM %DD %HH %mm %ss %MMM %dddd %A %ZZZ

Unknown codes render as nothing; formatting never fails.

Examples:
  dateform "%Y-%m-%d %-I:%M:%S %p"
  dateform -d express "%YYYY-%MM-%DD %hh:%mm %A" --date 2000-12-25T13:15:45-05:00
  dateform --stamp "[%T]" < build.log
  dateform --stamp --json ts "%s" < events.jsonl
`
}

func main() {
	var args cliArgs
	arg.MustParse(&args)
	setupLogging(args.Verbose)
	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func run(args cliArgs) error {
	return runWithClock(args, clockwork.NewRealClock())
}

func runWithClock(args cliArgs, clock clockwork.Clock) error {
	dialect, err := resolveDialect(args.Dialect, args.Config)
	if err != nil {
		return err
	}

	tpl := dialect.DefaultTemplate()
	if args.Template != nil {
		tpl = *args.Template
	}

	if args.Tokens {
		for _, tok := range dialect.ParseFormat(tpl) {
			fmt.Println(tok)
		}
		return nil
	}

	if args.Stamp {
		if args.Date != "" {
			return errors.New("--date cannot be combined with --stamp")
		}
		loc, err := loadZone(args.Zone)
		if err != nil {
			return err
		}
		return stamp.RunWithClock(stamp.Options{
			Template: tpl,
			Input:    args.Input,
			Output:   args.Output,
			JSONKey:  args.JSON,
			Location: loc,
		}, dialect, clock)
	}

	date, err := resolveDate(args.Date, args.Zone, clock)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"module": "main", "dialect": dialect.Name(), "date": date}).Debug("formatting")
	fmt.Println(dialect.Format(tpl, date))
	return nil
}

func resolveDialect(name, configPath string) (*dateform.Dialect, error) {
	if configPath != "" {
		file, err := config.Parse(configPath)
		if err != nil {
			return nil, err
		}
		return file.Build()
	}
	d, ok := dialects.Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown dialect %q (known: %s)", name, strings.Join(dialects.Names(), ", "))
	}
	return d, nil
}

// resolveDate reads --date, falling back to the clock, and moves it into
// --zone. The engine itself never converts zones; it renders whatever zone
// the date carries.
func resolveDate(value, zone string, clock clockwork.Clock) (time.Time, error) {
	date := clock.Now()
	switch {
	case value == "":
	case strings.HasPrefix(value, "@"):
		secs, err := strconv.ParseInt(value[1:], 10, 64)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "invalid --date %q", value)
		}
		date = time.Unix(secs, 0)
	default:
		parsed, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "invalid --date %q", value)
		}
		date = parsed
	}

	loc, err := loadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	if loc != nil {
		date = date.In(loc)
	}
	return date, nil
}

// loadZone resolves --zone; an empty name gives a nil location.
func loadZone(zone string) (*time.Location, error) {
	if zone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --zone %q", zone)
	}
	return loc, nil
}
