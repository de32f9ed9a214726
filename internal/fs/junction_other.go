//go:build !windows

package fs

func isProtectedJunction(string) bool {
	return false
}
