package memreg

import "github.com/neko-neko-nyan/regpath/pkg/types"

var (
	// ErrUnknownHost indicates a Connect to a host no store is linked for.
	ErrUnknownHost = &types.Error{
		Kind: types.ErrKindBackend,
		Code: types.CodeBadNetPath,
		Msg:  "memreg: unknown remote host",
	}

	// ErrLoadTarget indicates a LoadKey onto an already existing sub-key.
	ErrLoadTarget = &types.Error{
		Kind: types.ErrKindPrecondition,
		Code: types.CodeAlreadyExists,
		Msg:  "memreg: load target already exists",
	}
)
