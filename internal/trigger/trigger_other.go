//go:build !windows

package trigger

import "context"

func Wait(ctx context.Context, c Combo) error {
	return ErrUnsupported
}
