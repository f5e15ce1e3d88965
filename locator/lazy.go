package locator

import (
	"sync"

	"github.com/juju/errors"
)

var errInitIncomplete = errors.New("locator initialization did not complete")

// Lazy holds a locator which is constructed on first access. The
// constructor runs exactly once; its result, either a locator or an
// error, is returned to every caller. Failures are not retried. If
// constructor panics, every later Get returns an error.
type Lazy struct {
	once    sync.Once
	newFunc func() (*Locator, error)
	loc     *Locator
	err     error
}

// Get returns the locator, constructing it if necessary.
func (l *Lazy) Get() (*Locator, error) {
	l.once.Do(func() {
		l.err = errInitIncomplete
		newFunc := l.newFunc
		l.newFunc = nil
		l.loc, l.err = newFunc()
	})

	return l.loc, l.err
}

// NewLazy returns a cell which calls newFunc on first Get.
func NewLazy(newFunc func() (*Locator, error)) *Lazy {
	return &Lazy{newFunc: newFunc}
}
