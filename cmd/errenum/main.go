package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/sublee/errenum/internal/config"
	errenuminternal "github.com/sublee/errenum/internal/errenum"
	"github.com/sublee/errenum/pkg/errenumerrors"
)

var Version = "dev"

var (
	bFlag      = flag.String("b", "", "comma-separated build tags")
	tFlag      = flag.Bool("t", false, "include tests")
	oFlag      = flag.String("o", errenuminternal.DefaultOutFile, "output file name")
	cFlag      = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag      = flag.Bool("v", false, "verbose logging")
	wFlag      = flag.Bool("w", false, "watch package directories and regenerate on change")
	configFlag = flag.String("config", config.DefaultPath, "configuration file")
)

func init() {
	errenuminternal.Version = Version
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch cfg.Color {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	r := &runner{wd: wd, cfg: cfg, patterns: patterns, color: color}

	if !*wFlag {
		if err := r.run(context.Background()); err != nil {
			r.printErr(err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := r.watch(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration file and applies the flags set on the
// command line over it. A missing file is fine unless -config is given
// explicitly.
func loadConfig() (*config.Config, error) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configFlag)
	if errors.Is(err, os.ErrNotExist) && !set["config"] {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if set["o"] {
		if err := config.ValidateOutput(*oFlag); err != nil {
			return nil, fmt.Errorf("invalid -o value: %w", err)
		}
		cfg.Output = *oFlag
	}
	if set["b"] {
		cfg.Tags = *bFlag
	}
	if set["t"] {
		cfg.Tests = *tFlag
	}
	if set["v"] {
		cfg.Verbose = *vFlag
	}
	if set["c"] {
		switch *cFlag {
		case "auto", "always", "never":
			cfg.Color = *cFlag
		default:
			return nil, fmt.Errorf("invalid -c value: %s", *cFlag)
		}
	}
	return cfg, nil
}

// runner generates the code of the configured packages.
type runner struct {
	wd       string
	cfg      *config.Config
	patterns []string
	color    bool
}

// run generates and writes the output files. Files whose content has not
// changed are left untouched so that the watch mode does not trigger itself.
func (r *runner) run(ctx context.Context) error {
	start := time.Now()
	outs, err := errenuminternal.Main(ctx, r.wd, os.Environ(), r.cfg.Tags, r.cfg.Tests, r.cfg.Output, r.patterns)
	if err != nil {
		return err
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		code := outs[out]
		path := out
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.wd, path)
		}

		if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, code) {
			slog.Debug("unchanged", "out", out)
			continue
		}
		if err := os.WriteFile(path, code, 0o644); err != nil {
			return err
		}
		fmt.Println("Generated:", out)
	}

	slog.Debug("done", "outs", len(outs), "elapsed", time.Since(start))
	return nil
}

func (r *runner) printErr(err error) {
	message := err.Error()
	if r.color {
		message = colorize(message)
	}
	fmt.Fprintln(os.Stderr, message)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reRule = regexp.MustCompile(`: (` + strings.Join(ruleNames(), "|") + `)([: ])`)
)

// ruleNames returns the quoted messages of the rules reported by errenum.
func ruleNames() []string {
	rules := []error{
		errenumerrors.ErrSyntax,
		errenumerrors.ErrDuplicateVariantName,
		errenumerrors.ErrArityMismatch,
		errenumerrors.ErrAmbiguousConversion,
		errenumerrors.ErrUnknownType,
		errenumerrors.ErrDuplicateEnumName,
		errenumerrors.ErrNameConflict,
		errenumerrors.ErrUnknownTarget,
		errenumerrors.ErrConversionMismatch,
	}
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = regexp.QuoteMeta(rule.Error())
	}
	return names
}

// colorize adds ANSI color codes to the message. Positions are dimmed and
// violated rules are red.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	message = reRule.ReplaceAllString(message, ": "+red+"$1"+reset+"$2")
	message = rePos.ReplaceAllString(message, dim+"$0"+reset)
	return message
}
