package cleanblog

import (
	"net/url"
	"path"
	"time"
)

// BuildURL joins a base URL with path segments. Unlike page links, no
// trailing slash is added since routes are registered without one.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(pathSegments) == 0 {
		if u.Path == "" {
			u.Path = "/"
		}
		return u.String()
	}
	u.Path = path.Join(u.Path, "/", path.Join(pathSegments...))
	return u.String()
}

// ISODate converts a post date ("January 02, 2006") to "2006-01-02".
// It returns "" if the date does not parse.
func ISODate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// RFC1123Date converts a post date to the RFC 1123 form used by RSS.
// It returns "" if the date does not parse.
func RFC1123Date(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC1123Z)
}
