package regpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko-neko-nyan/regpath/pkg/memreg"
	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

// mustMkdir creates the key for path, failing the test on error.
func mustMkdir(t *testing.T, reg *regpath.Registry, path string) *regpath.Path {
	t.Helper()
	p, err := reg.Resolve(path)
	require.NoError(t, err)
	require.NoError(t, p.Mkdir(nil))
	return p
}

func TestOpenIsLazyAndIdempotent(t *testing.T) {
	reg := newRegistry(t)
	mustMkdir(t, reg, `HKCU\Software\App`)

	p, err := reg.Resolve(`HKCU\Software`)
	require.NoError(t, err)
	assert.False(t, p.IsOpen())

	require.NoError(t, p.Open())
	assert.True(t, p.IsOpen())
	h := p.Handle()

	// Second open keeps the same handle.
	require.NoError(t, p.Open())
	assert.Equal(t, h, p.Handle())

	p.Close()
	assert.False(t, p.IsOpen())
}

func TestCloseIsIdempotent(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKCU\Software\App`)

	require.True(t, p.IsOpen(), "mkdir adopts the created handle")
	p.Close()
	assert.False(t, p.IsOpen())
	p.Close() // no-op, never fails
	assert.False(t, p.IsOpen())
}

func TestLocalHiveNeverCloses(t *testing.T) {
	reg := newRegistry(t)

	hive, err := reg.Resolve("HKCU")
	require.NoError(t, err)
	require.True(t, hive.IsOpen())

	hive.Close()
	assert.True(t, hive.IsOpen(), "the process-wide root handle is never released")
}

func TestRemoteLifecycle(t *testing.T) {
	local := memreg.New()
	remote := memreg.New()
	local.LinkRemote("server", remote)
	reg := regpath.New(local)

	// Seed a key on the remote machine.
	remoteReg := regpath.New(remote)
	mustMkdir(t, remoteReg, `HKLM\Software\Far`)

	// A remote hive root adopts the connection as its handle and does close.
	root, err := reg.Resolve(`\\server\HKLM`)
	require.NoError(t, err)
	require.NoError(t, root.Open())
	assert.True(t, root.IsOpen())
	root.Close()
	assert.False(t, root.IsOpen())

	// A deeper remote path opens the sub-key under a transient connection.
	far, err := reg.Resolve(`\\server\HKLM\Software\Far`)
	require.NoError(t, err)
	require.NoError(t, far.Open())
	assert.True(t, far.IsOpen())

	v, err := far.Exists()
	require.NoError(t, err)
	assert.True(t, v)
	far.Close()

	// Unknown hosts surface the backend failure, not a not-found.
	bad, err := reg.Resolve(`\\ghost\HKLM\Software`)
	require.NoError(t, err)
	_, err = bad.Exists()
	assert.ErrorIs(t, err, memreg.ErrUnknownHost)
}

func TestWithOpen(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKCU\Scoped`)
	p.Close()

	err := p.WithOpen(func(p *regpath.Path) error {
		assert.True(t, p.IsOpen())
		return nil
	})
	require.NoError(t, err)
	assert.False(t, p.IsOpen(), "closed on normal exit")

	sentinel := errors.New("boom")
	err = p.WithOpen(func(p *regpath.Path) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, p.IsOpen(), "closed on failure exit too")
}

func TestOperationsImplicitlyOpen(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKCU\Implicit`)
	require.NoError(t, p.SetValue("v", "data"))
	p.Close()

	// A read on a closed path opens it on the way.
	got, err := p.GetValue("v")
	require.NoError(t, err)
	assert.Equal(t, "data", got)
	assert.True(t, p.IsOpen())
}
