package launcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// TimestampLayout is the log-name timestamp format (YYYYMMDDTHHMMSS).
const TimestampLayout = "20060102T150405"

// Timestamp formats t for use in a log filename. Second resolution; two
// launches within the same second collide and the later one truncates the
// earlier log.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// LogFileName builds the log filename for an invocation at time t:
// <prefix>_<fork>_<branch>_<site>_<compiler>_<timestamp>.log, with any "/"
// in the branch name mapped to "-". Deterministic for a fixed invocation
// and timestamp.
func LogFileName(prefix string, inv models.Invocation, t time.Time) string {
	branch := strings.ReplaceAll(inv.Branch, "/", "-")
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s.log",
		prefix, inv.Fork, branch, inv.Site, inv.Compiler, Timestamp(t))
}
