// Command mediumread fetches a Medium article and saves it as a clean,
// self-contained HTML file for local reading.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	"github.com/abdukarimovhm/medium-reader/browser"
	"github.com/abdukarimovhm/medium-reader/extract"
	"github.com/abdukarimovhm/medium-reader/fs"
	"github.com/abdukarimovhm/medium-reader/goquery"
	"github.com/abdukarimovhm/medium-reader/htmltemplate"
	mrhttp "github.com/abdukarimovhm/medium-reader/http"
	"github.com/abdukarimovhm/medium-reader/jsonld"
	"github.com/abdukarimovhm/medium-reader/readability"
	mrslog "github.com/abdukarimovhm/medium-reader/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" required:"" help:"URL of the Medium article to fetch"`
	Dir         string        `short:"d" help:"Directory to save articles to (default: ~/.medium-reader/articles)"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	NoOpen      bool          `help:"Do not open the saved article after fetching"`
	Readability bool          `help:"Also try readability extraction when the usual strategies fail"`
	Rules       string        `type:"path" help:"YAML file overriding the normalizer rules"`
	Debug       bool          `help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mediumread"),
		kong.Description("Fetch Medium articles and read them locally"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rules := extract.DefaultRules()
	if cli.Rules != "" {
		rules, err = extract.LoadRules(cli.Rules)
		if err != nil {
			return fmt.Errorf("%s", mediumreader.ErrorMessage(err))
		}
	}

	strategies := []mediumreader.Extractor{
		mrslog.NewLoggingExtractor(jsonld.NewExtractor(), "jsonld", logger),
		mrslog.NewLoggingExtractor(goquery.NewExtractor(), "dom", logger),
	}
	if cli.Readability {
		strategies = append(strategies,
			mrslog.NewLoggingExtractor(readability.NewExtractor(), "readability", logger))
	}

	dir := cli.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return mediumreader.Errorf(mediumreader.EINTERNAL, "resolve home directory: %v", err)
		}
		dir = filepath.Join(home, ".medium-reader", "articles")
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   mrslog.NewLoggingFetcher(mrhttp.NewFetcher(mrhttp.WithTimeout(cli.Timeout)), logger),
		Extractor: extract.NewNormalizer(rules, strategies...),
		Renderer:  htmltemplate.NewRenderer(),
		Store:     fs.NewStore(dir),
		Opener:    browser.NewOpener(),
	}

	cmd := &ReadCmd{
		URL:    cli.URL,
		NoOpen: cli.NoOpen,
	}

	return cmd.Run(deps)
}
