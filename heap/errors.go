package heap

import "errors"

var (
	ErrHeapFull        = errors.New("heap is full")
	ErrHeapEmpty       = errors.New("heap is empty")
	ErrIndexOutOfRange = errors.New("index is outside the live range")
)
