//go:build windows

package app

// controllingTTY is the console input device tcell reads from.
const controllingTTY = "CONIN$"
