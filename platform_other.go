//go:build !android || !cgo
// +build !android !cgo

package fblog

import (
	"os"
)

// Off android there is no system logger to forward to; threadtime-formatted
// stderr keeps the output shape identical.
func platformSink() Sink {
	return TextSink(os.Stderr)
}
