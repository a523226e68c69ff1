package pathkit

import "github.com/GriffinCanCode/pathkit/logging"

// pkgLog receives debug output from the suppressed-failure paths. Silent by
// default.
var pkgLog = logging.NewNop()

// SetLogger routes the library's debug output to l. Passing nil restores the
// no-op logger.
func SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	pkgLog = l
}
