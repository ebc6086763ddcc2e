package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/crawl"
	"github.com/fwojciec/patchnotes/gemini"
	"github.com/fwojciec/patchnotes/goquery"
	"github.com/fwojciec/patchnotes/htmltomarkdown"
	pnhttp "github.com/fwojciec/patchnotes/http"
	"github.com/fwojciec/patchnotes/rod"
	pnslog "github.com/fwojciec/patchnotes/slog"
	"github.com/fwojciec/patchnotes/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// errorText prefers the application message over the wrapped error chain.
func errorText(err error) string {
	if patchnotes.ErrorCode(err) == patchnotes.EINTERNAL {
		return err.Error()
	}
	return patchnotes.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// ConfigPath is read when --config is not given. A missing file is ignored.
	ConfigPath string

	// DBPath is the history database used when neither --db nor the config sets one.
	DBPath string

	// SQLite database used by the history commands.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the real ones.
	AnnouncementService patchnotes.AnnouncementService
	Summarizer          patchnotes.Summarizer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: DefaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("patchnotes"),
		kong.Description("Fetch the latest Hypixel SkyBlock patch notes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		return err
	}
	dbPath := m.DBPath
	if dbPath == "" && cli.DB == "" && (cfg == nil || cfg.DB == "") {
		dbPath = DefaultDBPath()
	}
	settings := Resolve(cli, cfg, dbPath)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.RootURL = settings.Root

	fetcher, err := newFetcher(settings)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	var images patchnotes.ImageFetcher = pnhttp.NewImageFetcher(
		pnhttp.WithTimeout(settings.Timeout),
		pnhttp.WithUserAgent(settings.UserAgent),
	)

	var (
		pageFetcher patchnotes.Fetcher   = fetcher
		navigator   patchnotes.Navigator = goquery.NewNavigator()
		extractor   patchnotes.Extractor = goquery.NewExtractor()
	)
	if cli.Verbose {
		pageFetcher = pnslog.NewLoggingFetcher(pageFetcher, logger)
		images = pnslog.NewLoggingImageFetcher(images, logger)
		navigator = pnslog.NewLoggingNavigator(navigator, logger)
		extractor = pnslog.NewLoggingExtractor(extractor, logger)
	}

	crawler := &crawl.Crawler{
		Fetcher:     pageFetcher,
		Navigator:   navigator,
		Extractor:   extractor,
		Converter:   htmltomarkdown.NewConverter(),
		RetryDelays: crawl.RetryDelays(settings.Retries),
		Timeout:     settings.Timeout,
		Logger:      logger,
	}
	if settings.Rate > 0 {
		crawler.RateLimiter = crawl.NewHostLimiter(settings.Rate)
	}
	deps.Crawler = crawler
	deps.Images = images

	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd == "check" || cmd == "history" {
		deps.Announcements = m.AnnouncementService
		if deps.Announcements == nil {
			m.DB = sqlite.NewDB(settings.DB)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintln(stderr, "Hint: Set PATCHNOTES_DB to use a different database path")
				return fmt.Errorf("failed to open database at %q: %w", settings.DB, err)
			}
			defer m.Close()
			deps.Announcements = sqlite.NewAnnouncementService(m.DB)
		}
	}

	if cmd == "summary" {
		deps.Summarizer = m.Summarizer
		if deps.Summarizer == nil {
			if cli.Summary.APIKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return patchnotes.Errorf(patchnotes.EINVALID, "GEMINI_API_KEY not set")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cli.Summary.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Summarizer = gemini.NewSummarizer(client)
		}
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the --config file, or the default path if one is set.
// Only an explicitly requested file must exist.
func (m *Main) loadConfig(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = m.ConfigPath
	}
	if path == "" {
		return nil, nil
	}

	cfg, err := LoadConfig(path)
	if errors.Is(err, ErrConfigNotFound) && explicit == "" {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func newFetcher(s Settings) (patchnotes.Fetcher, error) {
	if s.Browser {
		return rod.NewFetcher(
			rod.WithFetchTimeout(s.Timeout),
			rod.WithUserAgent(s.UserAgent),
		)
	}
	return pnhttp.NewFetcher(
		pnhttp.WithTimeout(s.Timeout),
		pnhttp.WithUserAgent(s.UserAgent),
	), nil
}
