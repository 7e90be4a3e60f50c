package session

import (
	"net/url"
	"strings"
)

// RedirectURL reads the redirectTo query parameter and returns it only when
// it is a same-origin relative path. Absolute URLs and protocol-relative
// paths are rejected so the sign-in screen can't be used as an open
// redirector.
func RedirectURL(query url.Values) string {
	target := query.Get("redirectTo")
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return ""
}
