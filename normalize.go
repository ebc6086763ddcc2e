package patchnotes

import "strings"

// NormalizeImageURL makes protocol-relative and host-relative image URLs
// absolute. "//x" gets an https scheme, "/x" is resolved against host,
// anything else is returned unchanged.
func NormalizeImageURL(raw string, host string) string {
	switch {
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return host + raw
	default:
		return raw
	}
}
