//go:build !windows

package cli

// EnableANSI is a no-op outside Windows; every other supported terminal
// understands the escape codes already.
func EnableANSI() {}
