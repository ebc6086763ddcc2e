// Package patchnotes fetches the latest Hypixel SkyBlock patch-notes thread
// from the forums and turns its first post into an ordered sequence of
// styled text lines and image references for display.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package patchnotes

import "time"

// Forum defaults.
const (
	// DefaultRootURL is the forum index the crawl starts from.
	DefaultRootURL = "https://hypixel.net/forums/"

	// DefaultImageHost is the host that root-relative image paths resolve against.
	DefaultImageHost = "https://hypixel.net"

	// DefaultUserAgent is sent with every page request.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultTimeout bounds each page request.
	DefaultTimeout = 10 * time.Second

	// DefaultWrapWidth is the column limit for paragraph text.
	DefaultWrapWidth = 80
)
