package badge

import (
	"regexp"
	"strconv"
)

// unreadPattern matches the "(12)" unread counters mail and chat clients
// put in their window titles.
var unreadPattern = regexp.MustCompile(`\((\d+)\)`)

// unreadFromTitle extracts the unread counter from a window title, 0 when
// the title carries none.
func unreadFromTitle(title string) int {
	m := unreadPattern.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}
