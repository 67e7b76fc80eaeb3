package utils

import (
	"fmt"
	"runtime"
	"strings"
)

// PanicTrace formats a recovered panic value followed by the call stack of
// the recovering goroutine, skipping skip extra frames.
func PanicTrace(err any, skip int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", err)
	for i := 2 + skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(&b, "%s:%d (0x%x)\n", file, line, pc)
	}
	return b.String()
}
