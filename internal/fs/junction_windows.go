//go:build windows

package fs

import "golang.org/x/sys/windows"

// isProtectedJunction reports the compatibility junctions Windows keeps for
// old profile paths ("Documents and Settings", "Application Data", ...).
// They are system reparse points that always refuse enumeration.
func isProtectedJunction(fullPath string) bool {
	if fullPath == "" {
		return false
	}
	ptr, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	const protectedMask = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT
	return attrs&protectedMask == protectedMask
}
