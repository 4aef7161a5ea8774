package contxt

import (
	"context"
	"os"
	"time"
)

// WithTimeout bounds parent by timeout. A non-positive timeout, or CONTEXT_TEST being set,
// leaves the context without a deadline.
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 || os.Getenv("CONTEXT_TEST") != "" {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
