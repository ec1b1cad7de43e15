package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic from the calling goroutine with its stack and
// stores it in errp when errp is non-nil. Call it with defer.
//
//	defer logging.RecoverPanic(ctx, "sync watcher", &err)
func RecoverPanic(ctx context.Context, where string, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Str("where", where).
		Interface("panic", r).
		Str("go", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Msg("recovered from panic")

	if errp != nil {
		*errp = fmt.Errorf("%s: panic: %v", where, r)
	}
}
