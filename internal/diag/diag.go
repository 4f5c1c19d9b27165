// Package diag builds the diagnostic strings stamped into the saved config.
package diag

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Version returns the module version from build info, or fallback for
// development builds.
func Version(fallback string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return fallback
	}
	return bi.Main.Version
}

// Metrics describes process resource use since start.
func Metrics(start, now time.Time) string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return formatMetrics(ms.Sys, now.Sub(start), start, now, runtime.NumCPU())
}

func formatMetrics(sys uint64, up time.Duration, start, now time.Time, cores int) string {
	uptime := "under a second"
	if up >= time.Second {
		uptime = strings.TrimSpace(humanize.RelTime(start, now, "", ""))
	}
	return fmt.Sprintf("Process used %s of memory over %s of uptime on %d possible cores.",
		humanize.Bytes(sys), uptime, cores)
}
