//go:build !windows

package window

import (
	"time"

	"github.com/rpdg/winkey/keyboard"
)

// User32 is unavailable off Windows; every call reports failure.
type User32 struct {
	SendTimeout time.Duration
}

func New() (*User32, error) {
	return nil, ErrUnsupportedPlatform
}

func FindByTitle(string) (uintptr, error) { return 0, ErrUnsupportedPlatform }
func FindByClass(string) (uintptr, error) { return 0, ErrUnsupportedPlatform }
func FindByPID(uint32) ([]uintptr, error) { return nil, ErrUnsupportedPlatform }
func FindPIDByName(string) (uint32, error) { return 0, ErrUnsupportedPlatform }

func (u *User32) SendInput([]keyboard.Input) uint32 { return 0 }
func (u *User32) ForegroundWindow() uintptr { return 0 }
func (u *User32) SetForegroundWindow(uintptr) bool { return false }
func (u *User32) IsWindow(uintptr) bool { return false }
func (u *User32) SendMessage(uintptr, uint32, uintptr, uintptr) bool { return false }
func (u *User32) PostMessage(uintptr, uint32, uintptr, uintptr) bool { return false }
func (u *User32) KeyState(keyboard.VirtualKey) int16 { return 0 }
func (u *User32) VkKeyScan(rune) (uint16, bool) { return 0, false }
func (u *User32) ScanCode(keyboard.VirtualKey) uint16 { return 0 }
