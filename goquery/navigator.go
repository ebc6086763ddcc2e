package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Navigator = (*Navigator)(nil)

// Selectors for XenForo forum listings.
const (
	sectionTitleSelector = ".node-title"
	threadTitleSelector  = ".structItem-title a"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+`)

// Navigator finds the announcements sub-forum and the latest SkyBlock
// update thread on XenForo forum pages.
type Navigator struct {
	sectionNames []string
}

// NewNavigator creates a Navigator matching patchnotes.SectionNames.
func NewNavigator() *Navigator {
	return &Navigator{sectionNames: patchnotes.SectionNames}
}

// FindSection returns the first link whose text names the announcements
// section. Forum node titles are checked when no plain link matches.
func (n *Navigator) FindSection(html string, baseURL string) (string, error) {
	base, doc, err := parse(html, baseURL)
	if err != nil {
		return "", err
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !n.isSection(text(sel)) {
			return true
		}
		href, _ := sel.Attr("href")
		found = absURL(base, href)
		return found == ""
	})
	if found != "" {
		return found, nil
	}

	doc.Find(sectionTitleSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !n.isSection(text(sel)) {
			return true
		}
		link := sel.Find("a").First()
		if link.Length() == 0 {
			return true
		}
		href, _ := link.Attr("href")
		found = absURL(base, href)
		return found == ""
	})
	if found != "" {
		return found, nil
	}

	return "", patchnotes.Errorf(patchnotes.ENOTFOUND, "section not found")
}

// FindThread returns the first listed thread whose title mentions SkyBlock
// together with a version number or the word "Update".
func (n *Navigator) FindThread(html string, baseURL string) (string, error) {
	base, doc, err := parse(html, baseURL)
	if err != nil {
		return "", err
	}

	var found string
	doc.Find(threadTitleSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !IsUpdateTitle(text(sel)) {
			return true
		}
		href, _ := sel.Attr("href")
		found = absURL(base, href)
		return found == ""
	})
	if found != "" {
		return found, nil
	}

	return "", patchnotes.Errorf(patchnotes.ENOTFOUND, "thread not found")
}

// IsUpdateTitle reports whether a thread title looks like a SkyBlock update.
func IsUpdateTitle(title string) bool {
	if !strings.Contains(strings.ToLower(title), "skyblock") {
		return false
	}
	return versionPattern.MatchString(title) || strings.Contains(title, "Update")
}

func (n *Navigator) isSection(s string) bool {
	for _, name := range n.sectionNames {
		if strings.Contains(s, name) {
			return true
		}
	}
	return false
}

func parse(html string, baseURL string) (*url.URL, *goquery.Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, patchnotes.Errorf(patchnotes.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, patchnotes.Errorf(patchnotes.EINVALID, "failed to parse HTML: %v", err)
	}

	return base, doc, nil
}
