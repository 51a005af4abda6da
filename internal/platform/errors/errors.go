package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotTerminal      = errors.New("stdin is not a terminal")
	ErrTerminalTooSmall = errors.New("terminal too small")
)
