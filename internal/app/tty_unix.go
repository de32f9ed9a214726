//go:build !windows

package app

// controllingTTY is the device tcell opens for screen I/O.
const controllingTTY = "/dev/tty"
