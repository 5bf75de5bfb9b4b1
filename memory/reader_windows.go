package memory

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	ProcReadProcessMemory = kernel32.NewProc("ReadProcessMemory")
)

// Process is an open handle to the game client.
type Process struct {
	Handle windows.Handle
	Base   uintptr
}

func Open(pid uint32, base uintptr) (*Process, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_VM_READ|windows.PROCESS_QUERY_INFORMATION, false, pid)
	if err != nil {
		return nil, fmt.Errorf("open process %d: %w", pid, err)
	}
	return &Process{Handle: handle, Base: base}, nil
}

func (p *Process) Close() error {
	if p.Handle == 0 {
		return nil
	}
	err := windows.CloseHandle(p.Handle)
	p.Handle = 0
	return err
}

func (p *Process) ReadBytes(addr uintptr, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var bytesRead uintptr
	ret, _, _ := ProcReadProcessMemory.Call(
		uintptr(p.Handle),
		addr,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&bytesRead)),
	)
	if ret == 0 {
		return fmt.Errorf("read failed at 0x%X", addr)
	}
	return nil
}

func (p *Process) ReadU8(addr uintptr) uint8 {
	var v uint8
	ProcReadProcessMemory.Call(uintptr(p.Handle), addr, uintptr(unsafe.Pointer(&v)), 1, 0)
	return v
}

func (p *Process) ReadU32(addr uintptr) uint32 {
	var v uint32
	ProcReadProcessMemory.Call(uintptr(p.Handle), addr, uintptr(unsafe.Pointer(&v)), 4, 0)
	return v
}

func (p *Process) ReadU64(addr uintptr) uint64 {
	var v uint64
	ProcReadProcessMemory.Call(uintptr(p.Handle), addr, uintptr(unsafe.Pointer(&v)), 8, 0)
	return v
}

func (p *Process) ReadF32(addr uintptr) float32 {
	var v float32
	ProcReadProcessMemory.Call(uintptr(p.Handle), addr, uintptr(unsafe.Pointer(&v)), 4, 0)
	return v
}

// ReadPtr follows a pointer and reports whether it looks like a user-space address.
func (p *Process) ReadPtr(addr uintptr) (uintptr, bool) {
	v := p.ReadU64(addr)
	return uintptr(v), IsValidPtr(v)
}

// ReadString reads a NUL-terminated narrow string.
func (p *Process) ReadString(addr uintptr, maxLen int) string {
	buf := make([]byte, maxLen)
	if p.ReadBytes(addr, buf) != nil {
		return ""
	}
	return CString(buf)
}

// ReadWString reads a NUL-terminated UTF-16 string, the client's native text form.
func (p *Process) ReadWString(addr uintptr, maxLen int) string {
	buf := make([]byte, maxLen*2)
	if p.ReadBytes(addr, buf) != nil {
		return ""
	}
	return UTF16String(buf)
}
