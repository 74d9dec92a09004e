package staking

import "errors"

// codec errors
var (
	ErrInstructionUnpack  = errors.New("ErrInstructionUnpack")
	ErrBufferTooSmall     = errors.New("ErrBufferTooSmall")
	ErrUnsupportedVersion = errors.New("ErrUnsupportedVersion")
)
