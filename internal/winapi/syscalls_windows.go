//go:build windows

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modadvapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procRegEnumValueW           = modadvapi32.NewProc("RegEnumValueW")
	procRegSetValueExW          = modadvapi32.NewProc("RegSetValueExW")
	procRegFlushKey             = modadvapi32.NewProc("RegFlushKey")
	procRegLoadKeyW             = modadvapi32.NewProc("RegLoadKeyW")
	procRegSaveKeyW             = modadvapi32.NewProc("RegSaveKeyW")
	procRegQueryReflectionKey   = modadvapi32.NewProc("RegQueryReflectionKey")
	procRegEnableReflectionKey  = modadvapi32.NewProc("RegEnableReflectionKey")
	procRegDisableReflectionKey = modadvapi32.NewProc("RegDisableReflectionKey")
)

func regErrno(r uintptr) error {
	if r == 0 {
		return nil
	}
	return syscall.Errno(r)
}

func regEnumValue(key windows.Handle, index uint32, name *uint16, nameLen *uint32, valtype *uint32, data *byte, dataLen *uint32) error {
	r, _, _ := procRegEnumValueW.Call(
		uintptr(key),
		uintptr(index),
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(nameLen)),
		0,
		uintptr(unsafe.Pointer(valtype)),
		uintptr(unsafe.Pointer(data)),
		uintptr(unsafe.Pointer(dataLen)),
	)
	return regErrno(r)
}

func regSetValueEx(key windows.Handle, name *uint16, valtype uint32, data *byte, dataLen uint32) error {
	r, _, _ := procRegSetValueExW.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(name)),
		0,
		uintptr(valtype),
		uintptr(unsafe.Pointer(data)),
		uintptr(dataLen),
	)
	return regErrno(r)
}

func regFlushKey(key windows.Handle) error {
	r, _, _ := procRegFlushKey.Call(uintptr(key))
	return regErrno(r)
}

func regLoadKey(key windows.Handle, subkey, file *uint16) error {
	r, _, _ := procRegLoadKeyW.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(subkey)),
		uintptr(unsafe.Pointer(file)),
	)
	return regErrno(r)
}

func regSaveKey(key windows.Handle, file *uint16) error {
	r, _, _ := procRegSaveKeyW.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(file)),
		0,
	)
	return regErrno(r)
}

func regQueryReflectionKey(key windows.Handle, disabled *uint32) error {
	r, _, _ := procRegQueryReflectionKey.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(disabled)),
	)
	return regErrno(r)
}

func regSetReflectionKey(key windows.Handle, disable bool) error {
	proc := procRegEnableReflectionKey
	if disable {
		proc = procRegDisableReflectionKey
	}
	r, _, _ := proc.Call(uintptr(key))
	return regErrno(r)
}
