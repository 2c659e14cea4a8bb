//go:build android && cgo
// +build android,cgo

package fblog

/*
#cgo LDFLAGS: -llog

#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"unsafe"
)

// androidSink hands records straight to the platform logger. Priority
// values already match android_LogPriority, so they pass through unchanged.
type androidSink struct{}

func platformSink() Sink {
	return androidSink{}
}

func (androidSink) WriteLog(priority Priority, tag string, message string) error {
	ctag := C.CString(tag)
	defer C.free(unsafe.Pointer(ctag))
	// Logcat records are single lines; split the payload the way the
	// platform's own writers do.
	for _, line := range splitLines(message) {
		cline := C.CString(line)
		C.__android_log_write(C.int(priority), ctag, cline)
		C.free(unsafe.Pointer(cline))
	}
	return nil
}
