package request

import (
	"strings"

	"github.com/mssola/useragent"
)

// ClientSummary reduces a User-Agent header to "Browser on OS" for request
// logs, and reports whether the caller identifies as a bot.
func ClientSummary(userAgent string) (summary string, bot bool) {
	if strings.TrimSpace(userAgent) == "" {
		return "unknown", false
	}

	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	os := ua.OS()
	if ua.Mobile() && ua.Platform() != "" {
		os = ua.Platform()
	}

	if browser == "" {
		browser = "unknown browser"
	}
	if os == "" {
		return browser, ua.Bot()
	}
	return browser + " on " + os, ua.Bot()
}
