// Package lock provides the per-(barber, day) mutual exclusion taken around
// the booking validate-then-commit sequence.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrBusy = errors.New("lock: busy")

// Locker acquires a named exclusive lock. The returned release func is safe
// to call more than once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func BookingKey(barberID uint, day time.Time) string {
	return fmt.Sprintf("booking:barber:%d:%s", barberID, day.Format("2006-01-02"))
}
