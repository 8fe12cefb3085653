package preview

import (
	"regexp"
	"strconv"
)

var (
	ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
	urlRe  = regexp.MustCompile(`(https?)://(localhost|127\.0\.0\.1|0\.0\.0\.0|\[::1?\])(?::(\d+))?[^\s]*`)
	portRe = regexp.MustCompile(`(?i)\b(?:listening|running|started|serving)\b.*\bport\b\D{0,3}(\d{2,5})\b`)
)

// DetectServer looks for the dev server's address in one line of output.
// It understands URL banners (Vite, Next, CRA) and "listening on port N".
func DetectServer(line string) (url string, port int, ok bool) {
	line = ansiRe.ReplaceAllString(line, "")

	if m := urlRe.FindStringSubmatch(line); m != nil {
		port := 80
		if m[1] == "https" {
			port = 443
		}
		if m[3] != "" {
			p, err := strconv.Atoi(m[3])
			if err != nil {
				return "", 0, false
			}
			port = p
		}
		return m[0], port, true
	}

	if m := portRe.FindStringSubmatch(line); m != nil {
		p, err := strconv.Atoi(m[1])
		if err != nil || p > 65535 {
			return "", 0, false
		}
		return "http://localhost:" + m[1], p, true
	}

	return "", 0, false
}
