package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	RootURL       string
	Crawler       *crawl.Crawler
	Images        patchnotes.ImageFetcher
	Announcements patchnotes.AnnouncementService
	Summarizer    patchnotes.Summarizer
}

// CLI defines the command-line interface structure for Kong.
// Zero-valued global flags fall back to the config file, then to built-in defaults.
type CLI struct {
	Root      string        `env:"PATCHNOTES_ROOT" help:"Forum index URL"`
	Timeout   time.Duration `help:"Per-page fetch timeout"`
	UserAgent string        `name:"user-agent" help:"User-Agent header for page requests"`
	Browser   bool          `help:"Fetch pages with headless Chrome"`
	Retries   int           `help:"Retries per failed page fetch"`
	Rate      float64       `help:"Requests per second per host (0 disables limiting)"`
	DB        string        `name:"db" env:"PATCHNOTES_DB" help:"History database path"`
	Config    string        `help:"Config file path"`
	Verbose   bool          `short:"v" help:"Log every request"`

	Show    ShowCmd    `cmd:"" default:"1" help:"Show the latest patch notes"`
	Check   CheckCmd   `cmd:"" help:"Record the latest patch notes and report whether they changed"`
	History HistoryCmd `cmd:"" help:"List previously seen patch notes"`
	Export  ExportCmd  `cmd:"" help:"Write the latest patch notes and images to a directory"`
	Summary SummaryCmd `cmd:"" help:"Summarize the latest patch notes with Gemini"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Format string `short:"f" enum:"text,legacy,markdown,json" default:"text" help:"Output format (text, legacy, markdown, json)"`
	Color  bool   `help:"Render legacy color codes as terminal colors"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Maximum entries to list"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir         string `arg:"" help:"Parent directory for the export"`
	Name        string `default:"latest" help:"Export directory name"`
	NoImages    bool   `name:"no-images" help:"Skip image downloads"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent image downloads"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	APIKey string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
}
