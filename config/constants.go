package config

import "github.com/brettbedarf/webshell/internal/util"

// CLI verbosity values accepted by ConfigOverride.LogLvl; values outside the
// range are clamped.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

var verboseLvls = [...]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}

// LogLevelFromVerbose maps a 1 (error) .. 5 (trace) verbosity onto a util.LogLevel
func LogLevelFromVerbose(verbose int) util.LogLevel {
	return verboseLvls[util.Clamp(verbose, ErrorVerbose, TraceVerbose)-1]
}
