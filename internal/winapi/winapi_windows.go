//go:build windows

package winapi

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Backend adapts the live Windows registry to the regpath backend surface.
// Handles are real HKEYs, so the predefined hive pseudo-handles work
// unchanged.
type Backend struct{}

var _ regpath.Backend = Backend{}

// New returns the live-registry backend.
func New() Backend { return Backend{} }

func key(h regpath.Handle) registry.Key { return registry.Key(syscall.Handle(h)) }

func handle(k registry.Key) regpath.Handle { return regpath.Handle(k) }

// wrap converts a syscall failure into a typed error carrying the platform
// code, keeping not-found distinguishable.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	e := &types.Error{Kind: types.ErrKindBackend, Msg: "winapi: " + op, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = uint32(errno)
		switch errno {
		case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND, windows.ERROR_NO_MORE_ITEMS:
			e.Kind = types.ErrKindNotFound
		case windows.ERROR_INVALID_HANDLE, windows.ERROR_KEY_DELETED:
			e.Kind = types.ErrKindState
		}
	}
	return e
}

// Connect implements regpath.Backend.
func (Backend) Connect(host string, root types.HKey) (regpath.Handle, error) {
	k, err := registry.OpenRemoteKey(host, registry.Key(root))
	if err != nil {
		return regpath.InvalidHandle, wrap(fmt.Sprintf("connect %s", host), err)
	}
	return handle(k), nil
}

// Open implements regpath.Backend.
func (Backend) Open(h regpath.Handle, path string, access types.Access) (regpath.Handle, error) {
	k, err := registry.OpenKey(key(h), path, uint32(access))
	if err != nil {
		return regpath.InvalidHandle, wrap(fmt.Sprintf("open %q", path), err)
	}
	return handle(k), nil
}

// Create implements regpath.Backend.
func (Backend) Create(h regpath.Handle, path string, access types.Access) (regpath.Handle, error) {
	k, _, err := registry.CreateKey(key(h), path, uint32(access))
	if err != nil {
		return regpath.InvalidHandle, wrap(fmt.Sprintf("create %q", path), err)
	}
	return handle(k), nil
}

// Close implements regpath.Backend.
func (Backend) Close(h regpath.Handle) error {
	return wrap("close", key(h).Close())
}

// DeleteKey implements regpath.Backend.
func (Backend) DeleteKey(h regpath.Handle, name string) error {
	return wrap(fmt.Sprintf("delete key %q", name), registry.DeleteKey(key(h), name))
}

// Stat implements regpath.Backend.
func (Backend) Stat(h regpath.Handle) (regpath.KeyStat, error) {
	info, err := key(h).Stat()
	if err != nil {
		return regpath.KeyStat{}, wrap("stat", err)
	}
	return regpath.KeyStat{
		SubKeyCount: int(info.SubKeyCount),
		ValueCount:  int(info.ValueCount),
		ModTime:     info.ModTime(),
	}, nil
}

// EnumKey implements regpath.Backend.
func (Backend) EnumKey(h regpath.Handle, i int) (string, error) {
	// Key names are capped at 255 characters.
	buf := make([]uint16, 256)
	n := uint32(len(buf))
	err := windows.RegEnumKeyEx(windows.Handle(h), uint32(i), &buf[0], &n, nil, nil, nil, nil)
	if err != nil {
		return "", wrap(fmt.Sprintf("enum key %d", i), err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// EnumValue implements regpath.Backend.
func (Backend) EnumValue(h regpath.Handle, i int) (string, []byte, types.RegType, error) {
	// Value names are capped at 16383 characters; data grows on demand.
	name := make([]uint16, 16384)
	data := make([]byte, 256)
	for {
		nameLen := uint32(len(name))
		dataLen := uint32(len(data))
		var valtype uint32
		err := regEnumValue(windows.Handle(h), uint32(i), &name[0], &nameLen, &valtype, &data[0], &dataLen)
		if err == windows.ERROR_MORE_DATA {
			data = make([]byte, dataLen)
			continue
		}
		if err != nil {
			return "", nil, 0, wrap(fmt.Sprintf("enum value %d", i), err)
		}
		return windows.UTF16ToString(name[:nameLen]), data[:dataLen], types.RegType(valtype), nil
	}
}

// GetValue implements regpath.Backend.
func (Backend) GetValue(h regpath.Handle, name string) ([]byte, types.RegType, error) {
	buf := make([]byte, 256)
	for {
		n, valtype, err := key(h).GetValue(name, buf)
		if err == registry.ErrShortBuffer {
			buf = make([]byte, n)
			continue
		}
		if err != nil {
			return nil, 0, wrap(fmt.Sprintf("get value %q", name), err)
		}
		return buf[:n], types.RegType(valtype), nil
	}
}

// SetValue implements regpath.Backend.
func (Backend) SetValue(h regpath.Handle, name string, typ types.RegType, data []byte) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return wrap(fmt.Sprintf("set value %q", name), err)
	}
	var dataPtr *byte
	if len(data) > 0 {
		dataPtr = &data[0]
	}
	return wrap(fmt.Sprintf("set value %q", name),
		regSetValueEx(windows.Handle(h), namePtr, uint32(typ), dataPtr, uint32(len(data))))
}

// DeleteValue implements regpath.Backend.
func (Backend) DeleteValue(h regpath.Handle, name string) error {
	return wrap(fmt.Sprintf("delete value %q", name), key(h).DeleteValue(name))
}

// Flush implements regpath.Backend.
func (Backend) Flush(h regpath.Handle) error {
	return wrap("flush", regFlushKey(windows.Handle(h)))
}

// LoadKey implements regpath.Backend.
func (Backend) LoadKey(h regpath.Handle, name, file string) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return wrap("load key", err)
	}
	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return wrap("load key", err)
	}
	return wrap(fmt.Sprintf("load key %q", name), regLoadKey(windows.Handle(h), namePtr, filePtr))
}

// SaveKey implements regpath.Backend.
func (Backend) SaveKey(h regpath.Handle, file string) error {
	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return wrap("save key", err)
	}
	return wrap(fmt.Sprintf("save key to %q", file), regSaveKey(windows.Handle(h), filePtr))
}

// QueryReflection implements regpath.Backend.
func (Backend) QueryReflection(h regpath.Handle) (bool, error) {
	var disabled uint32
	if err := regQueryReflectionKey(windows.Handle(h), &disabled); err != nil {
		return false, wrap("query reflection", err)
	}
	return disabled != 0, nil
}

// SetReflection implements regpath.Backend.
func (Backend) SetReflection(h regpath.Handle, disable bool) error {
	return wrap("set reflection", regSetReflectionKey(windows.Handle(h), disable))
}
