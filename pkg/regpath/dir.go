package regpath

import (
	"fmt"
	"io"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Exists reports whether the key is present. It tries to open the path and
// converts exactly the not-found failure to false; every other failure
// propagates. An already open path short-circuits to true.
func (p *Path) Exists() (bool, error) {
	if p.IsOpen() {
		return true, nil
	}
	if err := p.Open(); err != nil {
		if types.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MkdirOptions controls Mkdir. A nil options pointer selects the permissive
// defaults: create missing parents, tolerate an existing key.
type MkdirOptions struct {
	// Parents allows creating missing intermediate keys. When false, a
	// missing parent is an error and nothing is created.
	Parents bool
	// ExistOK tolerates the key already existing. When false, an existing
	// key is an error.
	ExistOK bool
}

// Mkdir creates the key and adopts the resulting handle. Precondition
// failures (ErrExists, ErrNoParent) are raised before any create call.
func (p *Path) Mkdir(opts *MkdirOptions) error {
	if opts == nil {
		opts = &MkdirOptions{Parents: true, ExistOK: true}
	}

	if !opts.ExistOK {
		ok, err := p.Exists()
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("%w: %s", types.ErrExists, p)
		}
	}
	if !opts.Parents && !p.IsHive() {
		parent, err := p.Parent()
		if err != nil {
			return err
		}
		ok, err := parent.Exists()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrNoParent, parent)
		}
	}

	// A local hive root always exists and already holds its root handle.
	if p.IsHive() && !p.IsRemote() {
		return nil
	}

	base, closeBase, err := p.baseHandle()
	if err != nil {
		return err
	}
	h, err := p.reg.backend.Create(base, p.subPath(), types.KEY_READ)
	if closeBase {
		_ = p.reg.backend.Close(base)
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", p, err)
	}

	// Replace a stale handle rather than leaking it.
	if p.IsOpen() {
		_ = p.reg.backend.Close(p.handle)
	}
	p.handle = h
	return nil
}

// baseHandle returns the handle key operations below the hive run against:
// the local hive root handle, or a fresh remote connection the caller must
// close.
func (p *Path) baseHandle() (Handle, bool, error) {
	if p.IsRemote() {
		hk, ok := p.HiveKey()
		if !ok {
			return InvalidHandle, false, fmt.Errorf("%w: %q", types.ErrUnknownHive, p.HiveName())
		}
		conn, err := p.reg.backend.Connect(p.host, hk)
		if err != nil {
			return InvalidHandle, false, fmt.Errorf("connect %s: %w", p.host, err)
		}
		return conn, true, nil
	}
	hive, ok := p.Hive()
	if !ok {
		return InvalidHandle, false, fmt.Errorf("%w: %q", types.ErrUnknownHive, p.HiveName())
	}
	return hive.handle, false, nil
}

// DeleteChild deletes the named direct sub-key. The child must itself be
// empty; use RemoveAll on the child for recursive deletion.
func (p *Path) DeleteChild(name string) error {
	if err := p.Open(); err != nil {
		return err
	}
	return p.reg.backend.DeleteKey(p.handle, name)
}

// Remove closes this path and deletes it from its parent. Fails on a hive
// root, and on keys that still have children if the backend forbids that.
func (p *Path) Remove() error {
	parent, err := p.Parent()
	if err != nil {
		return err
	}
	p.Close()
	return parent.DeleteChild(p.Name())
}

// Clear deletes every child key recursively and every value under this key,
// leaving the key itself in place. Child and value names are snapshotted
// before any deletion, so backend index renumbering cannot skip entries.
func (p *Path) Clear() error {
	names, err := p.ListNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		child, err := p.Join(name)
		if err != nil {
			return err
		}
		if err := child.RemoveAll(); err != nil {
			return err
		}
	}

	values, err := p.ValueNames()
	if err != nil {
		return err
	}
	for _, name := range values {
		if err := p.DeleteValue(name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAll clears the subtree and then removes the key itself.
func (p *Path) RemoveAll() error {
	if err := p.Clear(); err != nil {
		return err
	}
	return p.Remove()
}

// KeyIterator lazily enumerates sub-key names. The count is queried once at
// creation; Next returns io.EOF past the last entry. Each IterNames call
// starts a fresh iteration.
type KeyIterator struct {
	p     *Path
	count int
	i     int
}

// IterNames starts a lazy enumeration of direct sub-key names, in backend
// enumeration order.
func (p *Path) IterNames() (*KeyIterator, error) {
	if err := p.Open(); err != nil {
		return nil, err
	}
	st, err := p.reg.backend.Stat(p.handle)
	if err != nil {
		return nil, err
	}
	return &KeyIterator{p: p, count: st.SubKeyCount}, nil
}

// Next returns the next sub-key name, or io.EOF when exhausted.
func (it *KeyIterator) Next() (string, error) {
	if it.i >= it.count {
		return "", io.EOF
	}
	name, err := it.p.reg.backend.EnumKey(it.p.handle, it.i)
	if err != nil {
		return "", err
	}
	it.i++
	return name, nil
}

// ChildIterator lazily enumerates child Paths.
type ChildIterator struct {
	keys *KeyIterator
}

// IterDir starts a lazy enumeration of child Paths, joining each enumerated
// name onto this path.
func (p *Path) IterDir() (*ChildIterator, error) {
	keys, err := p.IterNames()
	if err != nil {
		return nil, err
	}
	return &ChildIterator{keys: keys}, nil
}

// Next returns the next child Path, or io.EOF when exhausted.
func (it *ChildIterator) Next() (*Path, error) {
	name, err := it.keys.Next()
	if err != nil {
		return nil, err
	}
	return it.keys.p.Join(name)
}

// ListNames eagerly collects all direct sub-key names.
func (p *Path) ListNames() ([]string, error) {
	it, err := p.IterNames()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, it.count)
	for {
		name, err := it.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
}

// ListDir eagerly collects all child Paths.
func (p *Path) ListDir() ([]*Path, error) {
	it, err := p.IterDir()
	if err != nil {
		return nil, err
	}
	children := make([]*Path, 0, it.keys.count)
	for {
		child, err := it.Next()
		if err == io.EOF {
			return children, nil
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}
