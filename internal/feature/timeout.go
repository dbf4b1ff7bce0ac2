package feature

import (
	"github.com/bddtools/bddconv/internal/timestr"
)

// FormatTimeout normalizes a timeout string into its verbose form, e.g.
// "90s" becomes "1 minute 30 seconds". Unparseable input passes through
// unchanged; this never fails.
func FormatTimeout(timeout string) string {
	if timeout == "" {
		return ""
	}
	secs, err := timestr.ToSeconds(timeout)
	if err != nil {
		return timeout
	}
	return timestr.FromSeconds(secs)
}
