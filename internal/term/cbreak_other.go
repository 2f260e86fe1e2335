//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import xterm "golang.org/x/term"

// setCbreak falls back to full raw mode where termios is unavailable.
func setCbreak(fd int) error {
	_, err := xterm.MakeRaw(fd)
	return err
}
