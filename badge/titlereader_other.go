//go:build !windows

package badge

import (
	"context"
	"fmt"
)

type unsupportedReader struct{}

// NewSystemReader returns the platform badge reader. Only Windows has one;
// elsewhere every read fails and the poller logs and skips it.
func NewSystemReader() Reader { return unsupportedReader{} }

func (unsupportedReader) Count(ctx context.Context, app string) (int, error) {
	return 0, fmt.Errorf("badge reading not supported on this platform")
}
