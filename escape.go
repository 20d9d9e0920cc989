package themekit

import (
	"html"
	"net/url"
	"strings"
)

// allowedSchemes are the URL schemes EscapeURL lets through.
var allowedSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true, "ftps": true,
	"mailto": true, "news": true, "irc": true, "ircs": true,
	"gopher": true, "nntp": true, "feed": true, "telnet": true,
	"mms": true, "rtsp": true, "sms": true, "svn": true,
	"tel": true, "fax": true, "xmpp": true, "webcal": true, "urn": true,
}

// EscapeURL prepares a URL for an HTML attribute. Control characters are
// dropped, spaces percent-encoded, and the result HTML-escaped. URLs with a
// scheme outside the allow-list (javascript:, data:, ...) yield "".
func EscapeURL(raw string) string {
	s := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, " ", "%20")

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "" && !allowedSchemes[strings.ToLower(u.Scheme)] {
		return ""
	}
	return html.EscapeString(s)
}
