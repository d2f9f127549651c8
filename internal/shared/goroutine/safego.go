// Package goroutine runs fire-and-forget work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"hostelhub/internal/shared/logger"
)

// SafeGo starts fn on a new goroutine. A panic in fn is logged with its
// stack under the given name instead of taking the process down; callers
// use it for work whose failure must never reach the request path, like
// notification sends.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
