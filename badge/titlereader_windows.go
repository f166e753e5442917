//go:build windows

package badge

import (
	"context"
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
)

// enumState carries one Count call's inputs and accumulator through the
// EnumWindows lParam. The callback runs synchronously inside the
// EnumWindows call, so a stack pointer is safe here.
type enumState struct {
	pids  map[int32]bool
	total int
}

// enumWindowsCallback is created exactly once. syscall.NewCallback never
// releases callback memory and the process-wide quota is small, so a
// resident poller must not mint a new callback per poll.
var enumWindowsCallback = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	st := (*enumState)(unsafe.Pointer(lparam))
	if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
		return 1 // continue enumeration
	}
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if !st.pids[int32(pid)] {
		return 1
	}
	var title [256]uint16
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&title[0])), uintptr(len(title)))
	if n == 0 {
		return 1
	}
	st.total += unreadFromTitle(windows.UTF16ToString(title[:n]))
	return 1
})

// TitleReader derives an application's badge counter from its window
// titles. Windows exposes no portable taskbar-badge query, but the apps
// worth watching mirror the count into their title bars.
type TitleReader struct{}

func NewSystemReader() Reader { return TitleReader{} }

func (TitleReader) Count(ctx context.Context, app string) (int, error) {
	pids, err := pidsForName(ctx, app)
	if err != nil {
		return 0, err
	}
	if len(pids) == 0 {
		return 0, nil
	}

	st := enumState{pids: pids}
	if ret, _, err := procEnumWindows.Call(enumWindowsCallback, uintptr(unsafe.Pointer(&st))); ret == 0 {
		return 0, fmt.Errorf("EnumWindows failed: %v", err)
	}
	return st.total, nil
}

func pidsForName(ctx context.Context, app string) (map[int32]bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	target := strings.ToLower(app)
	pids := make(map[int32]bool)
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if strings.ToLower(name) == target {
			pids[p.Pid] = true
		}
	}
	return pids, nil
}
