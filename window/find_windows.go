//go:build windows

package window

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

func utf16Ptr(s string) *uint16 {
	ptr, _ := windows.UTF16PtrFromString(s)
	return ptr
}

func FindByTitle(title string) (uintptr, error) {
	ret, _, _ := ProcFindWindowW.Call(
		0,
		uintptr(unsafe.Pointer(utf16Ptr(title))),
	)
	if ret == 0 {
		return 0, fmt.Errorf("window not found with title: %s", title)
	}
	return ret, nil
}

func FindByClass(class string) (uintptr, error) {
	ret, _, _ := ProcFindWindowW.Call(
		uintptr(unsafe.Pointer(utf16Ptr(class))),
		0,
	)
	if ret == 0 {
		return 0, fmt.Errorf("window not found with class: %s", class)
	}
	return ret, nil
}

func FindByPID(targetPid uint32) ([]uintptr, error) {
	var hwnds []uintptr

	cb := windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		var pid uint32
		windows.GetWindowThreadProcessId(hwnd, &pid)
		if pid == targetPid {
			hwnds = append(hwnds, uintptr(hwnd))
		}
		return 1 // continue enumeration
	})

	// EnumWindows only fails when the callback stops it; ours never does.
	_ = windows.EnumWindows(cb, nil)

	if len(hwnds) == 0 {
		return nil, fmt.Errorf("no windows found for PID: %d", targetPid)
	}
	return hwnds, nil
}

// FindPIDByName returns the PID of the first running process whose
// executable name matches name, case-insensitively.
func FindPIDByName(name string) (uint32, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	for err = windows.Process32First(snap, &pe); err == nil; err = windows.Process32Next(snap, &pe) {
		if strings.EqualFold(windows.UTF16ToString(pe.ExeFile[:]), name) {
			return pe.ProcessID, nil
		}
	}
	return 0, fmt.Errorf("no process named %s", name)
}
