package types

// HKey identifies a well-known root key. The values are the predefined
// pseudo-handles, so an HKey can be used directly as a backend handle for a
// local hive root without an open call.
type HKey uintptr

const (
	HKEY_CLASSES_ROOT     HKey = 0x80000000
	HKEY_CURRENT_USER     HKey = 0x80000001
	HKEY_LOCAL_MACHINE    HKey = 0x80000002
	HKEY_USERS            HKey = 0x80000003
	HKEY_PERFORMANCE_DATA HKey = 0x80000004
	HKEY_CURRENT_CONFIG   HKey = 0x80000005
	HKEY_DYN_DATA         HKey = 0x80000006
)

// HiveKeys maps each canonical hive name to its predefined root key.
var HiveKeys = map[string]HKey{
	"HKEY_CLASSES_ROOT":     HKEY_CLASSES_ROOT,
	"HKEY_CURRENT_CONFIG":   HKEY_CURRENT_CONFIG,
	"HKEY_CURRENT_USER":     HKEY_CURRENT_USER,
	"HKEY_LOCAL_MACHINE":    HKEY_LOCAL_MACHINE,
	"HKEY_USERS":            HKEY_USERS,
	"HKEY_DYN_DATA":         HKEY_DYN_DATA,
	"HKEY_PERFORMANCE_DATA": HKEY_PERFORMANCE_DATA,
}

// HiveAliases maps the short hive aliases to canonical names.
var HiveAliases = map[string]string{
	"HKCR": "HKEY_CLASSES_ROOT",
	"HKCC": "HKEY_CURRENT_CONFIG",
	"HKCU": "HKEY_CURRENT_USER",
	"HKLM": "HKEY_LOCAL_MACHINE",
	"HKU":  "HKEY_USERS",
	"HKDD": "HKEY_DYN_DATA",
	"HKPD": "HKEY_PERFORMANCE_DATA",
}

// HKeyName returns the canonical hive name for a predefined root key, or
// the empty string for anything else.
func HKeyName(hk HKey) string {
	for name, k := range HiveKeys {
		if k == hk {
			return name
		}
	}
	return ""
}

// CanonicalHive expands a short alias to its full hive name. Names that are
// not known aliases are returned unchanged.
func CanonicalHive(name string) string {
	if full, ok := HiveAliases[name]; ok {
		return full
	}
	return name
}
