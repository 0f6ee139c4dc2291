package regpath_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

func TestExistsSemantics(t *testing.T) {
	reg := newRegistry(t)

	p, err := reg.Resolve(`HKCU\Software\Probe`)
	require.NoError(t, err)

	ok, err := p.Exists()
	require.NoError(t, err)
	assert.False(t, ok, "never-created key")

	require.NoError(t, p.Mkdir(nil))
	ok, err = p.Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, p.Remove())
	ok, err = p.Exists()
	require.NoError(t, err)
	assert.False(t, ok, "removed key")
}

func TestMkdirPreconditions(t *testing.T) {
	reg := newRegistry(t)
	mustMkdir(t, reg, `HKCU\Soft\Present`)

	p, err := reg.Resolve(`HKCU\Soft\Present`)
	require.NoError(t, err)
	err = p.Mkdir(&regpath.MkdirOptions{Parents: true, ExistOK: false})
	assert.ErrorIs(t, err, regpath.ErrExists)

	orphan, err := reg.Resolve(`HKCU\NoParent\Child`)
	require.NoError(t, err)
	err = orphan.Mkdir(&regpath.MkdirOptions{Parents: false, ExistOK: true})
	assert.ErrorIs(t, err, regpath.ErrNoParent)

	// The precondition fired before any create: nothing appeared.
	parent, err := reg.Resolve(`HKCU\NoParent`)
	require.NoError(t, err)
	ok, err := parent.Exists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMkdirCreatesIntermediates(t *testing.T) {
	reg := newRegistry(t)

	p := mustMkdir(t, reg, `HKCU\A\B\C`)
	assert.True(t, p.IsOpen())

	mid, err := reg.Resolve(`HKCU\A\B`)
	require.NoError(t, err)
	ok, err := mid.Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	// Permissive defaults tolerate re-creating.
	require.NoError(t, p.Mkdir(nil))

	// A local hive root "creation" is a no-op success.
	hive, err := reg.Resolve("HKCU")
	require.NoError(t, err)
	require.NoError(t, hive.Mkdir(nil))
}

func TestListNamesDeterministic(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKCU\Listing`)
	for _, name := range []string{"zeta", "Alpha", "mid"} {
		child, err := p.Join(name)
		require.NoError(t, err)
		require.NoError(t, child.Mkdir(nil))
	}

	first, err := p.ListNames()
	require.NoError(t, err)
	second, err := p.ListNames()
	require.NoError(t, err)
	assert.Equal(t, first, second, "no mutation between calls, same order")
	assert.ElementsMatch(t, []string{"zeta", "Alpha", "mid"}, first)
}

func TestIterators(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKCU\Iter`)
	for _, name := range []string{"one", "two"} {
		child, err := p.Join(name)
		require.NoError(t, err)
		require.NoError(t, child.Mkdir(nil))
	}

	it, err := p.IterNames()
	require.NoError(t, err)
	var names []string
	for {
		name, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"one", "two"}, names)

	// Each IterDir call restarts; children come back as canonical objects.
	children, err := p.ListDir()
	require.NoError(t, err)
	require.Len(t, children, 2)
	one, err := p.Join("one")
	require.NoError(t, err)
	assert.Same(t, one, children[0])

	again, err := p.ListDir()
	require.NoError(t, err)
	assert.Equal(t, children, again)
}

func TestDeleteChildRefusesNonEmpty(t *testing.T) {
	reg := newRegistry(t)
	mustMkdir(t, reg, `HKCU\Busy\Inner`)

	hive, err := reg.Resolve("HKCU")
	require.NoError(t, err)
	err = hive.DeleteChild("Busy")
	assert.Error(t, err, "non-empty keys need RemoveAll")
}

func TestRemoveAll(t *testing.T) {
	reg := newRegistry(t)

	top := mustMkdir(t, reg, `HKCU\Tree`)
	mustMkdir(t, reg, `HKCU\Tree\Left\Deeper`)
	right := mustMkdir(t, reg, `HKCU\Tree\Right`)
	require.NoError(t, top.SetValue("a", "1"))
	require.NoError(t, top.SetValue("b", uint32(2)))
	require.NoError(t, right.SetValue("c", []string{"x"}))

	deeper, err := reg.Resolve(`HKCU\Tree\Left\Deeper`)
	require.NoError(t, err)

	require.NoError(t, top.RemoveAll())

	for _, p := range []*regpath.Path{top, right, deeper} {
		ok, err := p.Exists()
		require.NoError(t, err)
		assert.False(t, ok, "%s should be gone", p)
	}

	// Reading a descendant's values after the teardown is a not-found.
	_, err = right.GetValue("c")
	assert.True(t, regpath.IsNotFound(err))
}

func TestClearKeepsTheKey(t *testing.T) {
	reg := newRegistry(t)

	p := mustMkdir(t, reg, `HKCU\Clearing`)
	mustMkdir(t, reg, `HKCU\Clearing\Sub`)
	require.NoError(t, p.SetValue("v", "x"))

	require.NoError(t, p.Clear())

	ok, err := p.Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	names, err := p.ListNames()
	require.NoError(t, err)
	assert.Empty(t, names)
	items, err := p.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}
