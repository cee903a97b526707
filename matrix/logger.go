// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// DefaultLogPrefix prefixes every warning written by the package logger.
const DefaultLogPrefix = "matrix: "

var pkgLogger atomic.Pointer[log.Logger]

func init() {
	pkgLogger.Store(log.New(os.Stderr, DefaultLogPrefix, log.LstdFlags))
}

// SetLogger replaces the logger used for non-fatal warnings (e.g. ToSlice on
// a multi-column matrix) and returns the previous one. A nil logger silences
// warnings.
func SetLogger(l *log.Logger) *log.Logger {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}

	return pkgLogger.Swap(l)
}

// warnf writes one warning line through the package logger.
func warnf(format string, args ...any) {
	pkgLogger.Load().Printf("warning: %s", fmt.Sprintf(format, args...))
}
