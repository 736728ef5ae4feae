//go:build !linux

package system

import "errors"

const (
	kdText     = 0x00
	kdGraphics = 0x01
)

var errNoVT = errors.New("virtual terminal control is only supported on linux")

func setMode(mode int) error { return errNoVT }

func writeVT(s string) error { return errNoVT }
