//go:build !windows

package shellsetup

import (
	"fmt"
	"os"
	"strings"
)

// processName reads the command name of pid from /proc. Platforms without
// /proc report an error and shell detection moves on.
func processName(pid int) (string, error) {
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(comm)), nil
}
