package regpath_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlush(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKCU\Flushed`)
	require.NoError(t, p.SetValue("v", "x"))
	require.NoError(t, p.Flush())
}

func TestSaveAndLoadImage(t *testing.T) {
	reg := newRegistry(t)

	src := mustMkdir(t, reg, `HKCU\Source`)
	mustMkdir(t, reg, `HKCU\Source\Nested`)
	require.NoError(t, src.SetValue("v", "payload"))

	file := filepath.Join(t.TempDir(), "hive.img")
	require.NoError(t, src.SaveTo(file))

	hive, err := reg.Resolve("HKLM")
	require.NoError(t, err)
	require.NoError(t, hive.LoadFrom("Restored", file))

	restored, err := reg.Resolve(`HKLM\Restored`)
	require.NoError(t, err)
	got, err := restored.GetValue("v")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	nested, err := reg.Resolve(`HKLM\Restored\Nested`)
	require.NoError(t, err)
	ok, err := nested.Exists()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReflection(t *testing.T) {
	reg := newRegistry(t)
	p := mustMkdir(t, reg, `HKLM\Software\Reflected`)

	enabled, err := p.Reflection()
	require.NoError(t, err)
	assert.True(t, enabled, "reflection starts enabled")

	require.NoError(t, p.SetReflection(false))
	enabled, err = p.Reflection()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, p.SetReflection(true))
	enabled, err = p.Reflection()
	require.NoError(t, err)
	assert.True(t, enabled)
}
