package core

import (
	"errors"
)

var (
	ErrUnknownCamera  = errors.New("unknown camera")
	ErrCameraExists   = errors.New("camera already exists")
	ErrCameraCapacity = errors.New("camera capacity reached")
	ErrMissingActions = errors.New("frame has no action source")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownKey     = errors.New("unknown key")
	ErrWatcherClosed  = errors.New("watcher already closed")
)
