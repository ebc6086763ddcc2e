package main_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/fwojciec/patchnotes"
	main "github.com/fwojciec/patchnotes/cmd/patchnotes"
	"github.com/fwojciec/patchnotes/crawl"
	"github.com/fwojciec/patchnotes/goquery"
	"github.com/fwojciec/patchnotes/mock"
)

const (
	rootURL   = "https://hypixel.net/forums/"
	threadURL = "https://hypixel.net/threads/skyblock-0-21.5800000/"
)

const indexHTML = `<html><body>
	<div class="node-title"><a href="/forums/off-topic.2/">Off Topic</a></div>
	<a href="/forums/news-and-announcements.4/">News and Announcements</a>
</body></html>`

const sectionHTML = `<html><body>
	<div class="structItem-title"><a href="/threads/bedwars-update.5800001/">BedWars Update</a></div>
	<div class="structItem-title"><a href="/threads/skyblock-0-21.5800000/">SkyBlock v0.21 - Garden Update</a></div>
</body></html>`

// threadHTML returns a thread page whose images live under imageBase.
func threadHTML(imageBase string) string {
	return fmt.Sprintf(`<html><body>
	<h1 class="p-title-value">SkyBlock v0.21 - Garden Update</h1>
	<article class="message-body"><div class="bbWrapper">
		<img src="%[1]s/img/header.png">
		<h2>Garden</h2>
		<p>Crops now grow faster.</p>
		<ul><li>New visitor</li></ul>
		<p><img src="%[1]s/img/header.png"><img src="%[1]s/img/missing.png"></p>
	</div></article>
</body></html>`, imageBase)
}

// forumPages maps the fixed forum URLs to their pages.
func forumPages() map[string]string {
	return map[string]string{
		rootURL: indexHTML,
		"https://hypixel.net/forums/news-and-announcements.4/": sectionHTML,
		threadURL: threadHTML("https://cdn.example.com"),
	}
}

// newDeps returns dependencies whose crawler serves pages from memory.
func newDeps(pages map[string]string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		RootURL: rootURL,
		Crawler: &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					html, ok := pages[url]
					if !ok {
						return "", patchnotes.Errorf(patchnotes.EUNAVAILABLE, "HTTP 404 for %s", url)
					}
					return html, nil
				},
				CloseFn: func() error { return nil },
			},
			Navigator: goquery.NewNavigator(),
			Extractor: goquery.NewExtractor(),
			Logger:    logger,
		},
	}, stdout, stderr
}

// newForum starts a server that serves the forum pages under /forums/ and
// /threads/, the header image, and 404 for the missing image.
func newForum(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/forums/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/forums/":
			_, _ = io.WriteString(w, indexHTML)
		case "/forums/news-and-announcements.4/":
			_, _ = io.WriteString(w, sectionHTML)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/threads/skyblock-0-21.5800000/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, threadHTML("http://"+r.Host))
	})
	mux.HandleFunc("/img/header.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG header"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newMain returns a Main isolated from the user's config and data files.
func newMain(t *testing.T) *main.Main {
	t.Helper()

	m := main.NewMain()
	dir := t.TempDir()
	m.ConfigPath = filepath.Join(dir, "missing.yaml")
	m.DBPath = filepath.Join(dir, "history.db")
	return m
}
