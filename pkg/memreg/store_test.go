package memreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
	"github.com/neko-neko-nyan/regpath/pkg/types"
)

func hkcu() regpath.Handle { return regpath.Handle(types.HKEY_CURRENT_USER) }

func TestCreateOpenRoundTrip(t *testing.T) {
	s := New()

	h, err := s.Create(hkcu(), `Software\Test\Deep`, types.KEY_READ)
	require.NoError(t, err)
	require.NoError(t, s.Close(h))

	// Reopens through intermediate keys created on the way.
	h, err = s.Open(hkcu(), `Software\Test\Deep`, types.KEY_READ)
	require.NoError(t, err)
	require.NoError(t, s.Close(h))

	// Lookup is case-insensitive.
	h, err = s.Open(hkcu(), `software\TEST\deep`, types.KEY_READ)
	require.NoError(t, err)
	require.NoError(t, s.Close(h))
}

func TestOpenNotFound(t *testing.T) {
	s := New()

	_, err := s.Open(hkcu(), `Software\Missing`, types.KEY_READ)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))

	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.CodeFileNotFound, te.Code)
}

func TestInvalidHandle(t *testing.T) {
	s := New()

	_, err := s.Stat(regpath.Handle(0xdead))
	assert.ErrorIs(t, err, types.ErrInvalidHandle)
	assert.False(t, types.IsNotFound(err))

	// Pseudo-handles close as a no-op; issued handles close once.
	require.NoError(t, s.Close(hkcu()))
	h, err := s.Create(hkcu(), "Once", types.KEY_READ)
	require.NoError(t, err)
	require.NoError(t, s.Close(h))
	assert.Error(t, s.Close(h))
}

func TestEnumerationOrder(t *testing.T) {
	s := New()

	for _, name := range []string{"Charlie", "alpha", "Bravo"} {
		h, err := s.Create(hkcu(), name, types.KEY_READ)
		require.NoError(t, err)
		require.NoError(t, s.Close(h))
	}

	st, err := s.Stat(hkcu())
	require.NoError(t, err)
	require.Equal(t, 3, st.SubKeyCount)

	// Insertion order, not sorted.
	var names []string
	for i := 0; i < st.SubKeyCount; i++ {
		name, err := s.EnumKey(hkcu(), i)
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"Charlie", "alpha", "Bravo"}, names)

	_, err = s.EnumKey(hkcu(), 3)
	assert.ErrorIs(t, err, types.ErrNoMoreItems)
}

func TestValueCRUD(t *testing.T) {
	s := New()
	h, err := s.Create(hkcu(), "Vals", types.KEY_READ)
	require.NoError(t, err)

	require.NoError(t, s.SetValue(h, "a", types.REG_SZ, []byte{'a', 0, 0, 0}))
	require.NoError(t, s.SetValue(h, "b", types.REG_DWORD, []byte{1, 0, 0, 0}))

	data, typ, err := s.GetValue(h, "A") // case-insensitive
	require.NoError(t, err)
	assert.Equal(t, types.REG_SZ, typ)
	assert.Equal(t, []byte{'a', 0, 0, 0}, data)

	// Replace keeps position and original name casing.
	require.NoError(t, s.SetValue(h, "A", types.REG_DWORD, []byte{2, 0, 0, 0}))
	name, _, typ, err := s.EnumValue(h, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", name)
	assert.Equal(t, types.REG_DWORD, typ)

	require.NoError(t, s.DeleteValue(h, "a"))
	_, _, err = s.GetValue(h, "a")
	assert.True(t, types.IsNotFound(err))
	err = s.DeleteValue(h, "a")
	assert.True(t, types.IsNotFound(err))

	st, err := s.Stat(h)
	require.NoError(t, err)
	assert.Equal(t, 1, st.ValueCount)
}

func TestDeleteKey(t *testing.T) {
	s := New()
	h, err := s.Create(hkcu(), `Top\Nested`, types.KEY_READ)
	require.NoError(t, err)

	top, err := s.Open(hkcu(), "Top", types.KEY_READ)
	require.NoError(t, err)

	// Non-empty keys refuse deletion with the access-denied shaped error.
	err = s.DeleteKey(hkcu(), "Top")
	require.ErrorIs(t, err, types.ErrKeyNotEmpty)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.CodeAccessDenied, te.Code)

	require.NoError(t, s.DeleteKey(top, "Nested"))
	require.NoError(t, s.DeleteKey(hkcu(), "Top"))

	// Stale handles to deleted keys fail with key-deleted, not not-found.
	_, err = s.Stat(h)
	assert.ErrorIs(t, err, types.ErrKeyDeleted)
	_, err = s.Stat(top)
	assert.ErrorIs(t, err, types.ErrKeyDeleted)
}

func TestConnectRemote(t *testing.T) {
	local := New()
	remote := New()

	rh, err := remote.Create(regpath.Handle(types.HKEY_LOCAL_MACHINE), "OnRemote", types.KEY_READ)
	require.NoError(t, err)
	require.NoError(t, remote.Close(rh))

	_, err = local.Connect(`\\server`, types.HKEY_LOCAL_MACHINE)
	assert.ErrorIs(t, err, ErrUnknownHost)

	local.LinkRemote("server", remote)
	conn, err := local.Connect(`\\SERVER`, types.HKEY_LOCAL_MACHINE)
	require.NoError(t, err)

	// Operations on the connection handle see the remote tree.
	h, err := local.Open(conn, "OnRemote", types.KEY_READ)
	require.NoError(t, err)
	require.NoError(t, local.Close(h))
	require.NoError(t, local.Close(conn))
}

func TestReflectionFlag(t *testing.T) {
	s := New()
	h, err := s.Create(hkcu(), "Refl", types.KEY_READ)
	require.NoError(t, err)

	disabled, err := s.QueryReflection(h)
	require.NoError(t, err)
	assert.False(t, disabled)

	require.NoError(t, s.SetReflection(h, true))
	disabled, err = s.QueryReflection(h)
	require.NoError(t, err)
	assert.True(t, disabled)

	require.NoError(t, s.Flush(h))
}
