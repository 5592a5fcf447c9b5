//go:build windows

package argio

import (
	"os"
	"syscall"
	"unsafe"
)

type windowsPlatform struct{}

func newPlatformIO() platformIO { return &windowsPlatform{} }

// Win32 structures
type coord struct{ X, Y int16 }
type smallRect struct{ Left, Top, Right, Bottom int16 }
type consoleScreenBufferInfo struct {
	DwSize              coord
	DwCursorPosition    coord
	WAttributes         uint16
	SrWindow            smallRect
	DwMaximumWindowSize coord
}

var (
	kernel32                       = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleMode             = kernel32.NewProc("GetConsoleMode")
	procGetConsoleScreenBufferInfo = kernel32.NewProc("GetConsoleScreenBufferInfo")
)

func (w *windowsPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var mode uint32
	r, _, _ := procGetConsoleMode.Call(f.Fd(), uintptr(unsafe.Pointer(&mode)))
	return r != 0
}

func (w *windowsPlatform) termSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	var info consoleScreenBufferInfo
	r, _, _ := procGetConsoleScreenBufferInfo.Call(f.Fd(), uintptr(unsafe.Pointer(&info)))
	if r == 0 {
		return 0, 0, false
	}
	width := int(info.SrWindow.Right - info.SrWindow.Left + 1)
	height := int(info.SrWindow.Bottom - info.SrWindow.Top + 1)
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
