package memreg

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// node is one key: ordered children and values, insertion order preserved
// for enumeration.
type node struct {
	name      string
	children  []*node
	values    []value
	modTime   time.Time
	noReflect bool

	// deleted marks a detached node so stale handles keep failing with a
	// key-deleted error instead of reading ghosts.
	deleted bool
}

type value struct {
	name string
	typ  types.RegType
	data []byte
}

// Store is an in-memory registry tree implementing regpath.Backend.
type Store struct {
	mu      sync.Mutex
	roots   map[types.HKey]*node
	handles map[regpath.Handle]*node
	next    regpath.Handle
	remotes map[string]*Store
}

var _ regpath.Backend = (*Store)(nil)

// New builds an empty store with all seven hive roots present.
func New() *Store {
	s := &Store{
		roots:   make(map[types.HKey]*node, len(types.HiveKeys)),
		handles: make(map[regpath.Handle]*node),
		next:    1,
		remotes: make(map[string]*Store),
	}
	for name, hk := range types.HiveKeys {
		s.roots[hk] = &node{name: name, modTime: time.Now()}
	}
	return s
}

// LinkRemote registers another store as the tree behind a remote host name,
// so Connect(host, ...) resolves into it. The host matches with or without
// the leading double separator, case-insensitively.
func (s *Store) LinkRemote(host string, remote *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remotes[normalizeHost(host)] = remote
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimPrefix(host, `\\`))
}

// issue assigns a fresh handle for n. Caller holds s.mu.
func (s *Store) issue(n *node) regpath.Handle {
	h := s.next
	s.next++
	s.handles[h] = n
	return h
}

// resolve maps a handle to its node. Predefined hive pseudo-handles resolve
// without having been issued. Caller holds s.mu.
func (s *Store) resolve(h regpath.Handle) (*node, error) {
	n, ok := s.roots[types.HKey(h)]
	if !ok {
		n, ok = s.handles[h]
	}
	if !ok {
		return nil, fmt.Errorf("memreg: handle %#x: %w", uintptr(h), types.ErrInvalidHandle)
	}
	if n.deleted {
		return nil, fmt.Errorf("memreg: %q: %w", n.name, types.ErrKeyDeleted)
	}
	return n, nil
}

func (n *node) child(name string) (int, *node) {
	for i, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return i, c
		}
	}
	return -1, nil
}

func (n *node) value(name string) int {
	for i := range n.values {
		if strings.EqualFold(n.values[i].name, name) {
			return i
		}
	}
	return -1
}

// walk descends the separator-joined path below n. Missing components fail
// not-found unless create is set, in which case they are created.
func (s *Store) walk(n *node, path string, create bool) (*node, error) {
	if path == "" {
		return n, nil
	}
	for _, part := range strings.Split(path, regpath.Separator) {
		_, c := n.child(part)
		if c == nil {
			if !create {
				return nil, fmt.Errorf("memreg: key %q: %w", path, types.ErrNotFound)
			}
			c = &node{name: part, modTime: time.Now()}
			n.children = append(n.children, c)
			n.modTime = c.modTime
		}
		n = c
	}
	return n, nil
}

// Connect implements regpath.Backend.
func (s *Store) Connect(host string, root types.HKey) (regpath.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remote, ok := s.remotes[normalizeHost(host)]
	if !ok {
		return regpath.InvalidHandle, fmt.Errorf("%w: %q", ErrUnknownHost, host)
	}
	n, ok := remote.roots[root]
	if !ok {
		return regpath.InvalidHandle, fmt.Errorf("memreg: root %#x: %w", uintptr(root), types.ErrNotFound)
	}
	return s.issue(n), nil
}

// Open implements regpath.Backend.
func (s *Store) Open(h regpath.Handle, path string, _ types.Access) (regpath.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return regpath.InvalidHandle, err
	}
	target, err := s.walk(n, path, false)
	if err != nil {
		return regpath.InvalidHandle, err
	}
	return s.issue(target), nil
}

// Create implements regpath.Backend.
func (s *Store) Create(h regpath.Handle, path string, _ types.Access) (regpath.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return regpath.InvalidHandle, err
	}
	target, err := s.walk(n, path, true)
	if err != nil {
		return regpath.InvalidHandle, err
	}
	return s.issue(target), nil
}

// Close implements regpath.Backend. Predefined pseudo-handles are ignored.
func (s *Store) Close(h regpath.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roots[types.HKey(h)]; ok {
		return nil
	}
	if _, ok := s.handles[h]; !ok {
		return fmt.Errorf("memreg: handle %#x: %w", uintptr(h), types.ErrInvalidHandle)
	}
	delete(s.handles, h)
	return nil
}

// DeleteKey implements regpath.Backend. The named child must have no
// children of its own; its subtree (just values, then) is detached and
// marked deleted for any handles still pointing at it.
func (s *Store) DeleteKey(h regpath.Handle, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return err
	}
	i, c := n.child(name)
	if c == nil {
		return fmt.Errorf("memreg: key %q: %w", name, types.ErrNotFound)
	}
	if len(c.children) > 0 {
		return fmt.Errorf("memreg: key %q: %w", name, types.ErrKeyNotEmpty)
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.modTime = time.Now()
	c.deleted = true
	return nil
}

// Stat implements regpath.Backend.
func (s *Store) Stat(h regpath.Handle) (regpath.KeyStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return regpath.KeyStat{}, err
	}
	return regpath.KeyStat{
		SubKeyCount: len(n.children),
		ValueCount:  len(n.values),
		ModTime:     n.modTime,
	}, nil
}

// EnumKey implements regpath.Backend.
func (s *Store) EnumKey(h regpath.Handle, i int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(n.children) {
		return "", fmt.Errorf("memreg: subkey index %d: %w", i, types.ErrNoMoreItems)
	}
	return n.children[i].name, nil
}

// EnumValue implements regpath.Backend.
func (s *Store) EnumValue(h regpath.Handle, i int) (string, []byte, types.RegType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return "", nil, 0, err
	}
	if i < 0 || i >= len(n.values) {
		return "", nil, 0, fmt.Errorf("memreg: value index %d: %w", i, types.ErrNoMoreItems)
	}
	v := n.values[i]
	return v.name, cloneBytes(v.data), v.typ, nil
}

// GetValue implements regpath.Backend.
func (s *Store) GetValue(h regpath.Handle, name string) ([]byte, types.RegType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return nil, 0, err
	}
	i := n.value(name)
	if i < 0 {
		return nil, 0, fmt.Errorf("memreg: value %q: %w", name, types.ErrNotFound)
	}
	v := n.values[i]
	return cloneBytes(v.data), v.typ, nil
}

// SetValue implements regpath.Backend. Replacing a value keeps its position
// and original name casing, like the native store.
func (s *Store) SetValue(h regpath.Handle, name string, typ types.RegType, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return err
	}
	n.modTime = time.Now()
	if i := n.value(name); i >= 0 {
		n.values[i].typ = typ
		n.values[i].data = cloneBytes(data)
		return nil
	}
	n.values = append(n.values, value{name: name, typ: typ, data: cloneBytes(data)})
	return nil
}

// DeleteValue implements regpath.Backend.
func (s *Store) DeleteValue(h regpath.Handle, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return err
	}
	i := n.value(name)
	if i < 0 {
		return fmt.Errorf("memreg: value %q: %w", name, types.ErrNotFound)
	}
	n.values = append(n.values[:i], n.values[i+1:]...)
	n.modTime = time.Now()
	return nil
}

// Flush implements regpath.Backend. The store is memory-resident, so flush
// only validates the handle.
func (s *Store) Flush(h regpath.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.resolve(h)
	return err
}

// QueryReflection implements regpath.Backend.
func (s *Store) QueryReflection(h regpath.Handle) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return false, err
	}
	return n.noReflect, nil
}

// SetReflection implements regpath.Backend.
func (s *Store) SetReflection(h regpath.Handle, disable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return err
	}
	n.noReflect = disable
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
