// Package clipboard writes text to the desktop clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("no clipboard utility available")

type WriteFunc func(text string) error

// System is the clipboard of the machine the process runs on. userID is
// ignored: every user shares it.
type System struct {
	write WriteFunc
}

func NewSystem() *System {
	return NewSystemWith(clipboard.WriteAll)
}

func NewSystemWith(write WriteFunc) *System {
	return &System{write: write}
}

func (s *System) Copy(ctx context.Context, userID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}

	return s.write(text)
}
