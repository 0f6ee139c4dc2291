package types

// Access is a key access mask passed to backend open/create calls.
type Access uint32

const (
	KEY_QUERY_VALUE        Access = 0x0001
	KEY_SET_VALUE          Access = 0x0002
	KEY_CREATE_SUB_KEY     Access = 0x0004
	KEY_ENUMERATE_SUB_KEYS Access = 0x0008
	KEY_NOTIFY             Access = 0x0010
	KEY_CREATE_LINK        Access = 0x0020

	KEY_WOW64_64KEY Access = 0x0100
	KEY_WOW64_32KEY Access = 0x0200

	KEY_READ       Access = 0x20019
	KEY_WRITE      Access = 0x20006
	KEY_EXECUTE    Access = 0x20019
	KEY_ALL_ACCESS Access = 0xF003F
)

// Option flags for key creation.
type Option uint32

const (
	REG_OPTION_NON_VOLATILE   Option = 0x0000
	REG_OPTION_VOLATILE       Option = 0x0001
	REG_OPTION_CREATE_LINK    Option = 0x0002
	REG_OPTION_BACKUP_RESTORE Option = 0x0004
	REG_OPTION_OPEN_LINK      Option = 0x0008
)

// NotifyFilter flags for change notification requests.
type NotifyFilter uint32

const (
	REG_NOTIFY_CHANGE_NAME       NotifyFilter = 0x0001
	REG_NOTIFY_CHANGE_ATTRIBUTES NotifyFilter = 0x0002
	REG_NOTIFY_CHANGE_LAST_SET   NotifyFilter = 0x0004
	REG_NOTIFY_CHANGE_SECURITY   NotifyFilter = 0x0008
)
