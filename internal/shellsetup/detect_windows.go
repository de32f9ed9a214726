//go:build windows

package shellsetup

import (
	"path"
	"strings"

	"golang.org/x/sys/windows"
)

// processName returns the image file name of pid, e.g. "pwsh.exe".
func processName(pid int) (string, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return "", err
	}
	defer windows.CloseHandle(handle)

	buf := make([]uint16, windows.MAX_PATH)
	for {
		size := uint32(len(buf))
		err = windows.QueryFullProcessImageName(handle, 0, &buf[0], &size)
		if err == nil {
			image := strings.ReplaceAll(windows.UTF16ToString(buf[:size]), "\\", "/")
			// Program Files paths contain spaces; keep only the file name.
			return path.Base(image), nil
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return "", err
		}
		buf = make([]uint16, len(buf)*2)
	}
}
