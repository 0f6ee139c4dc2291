package memreg

import (
	"fmt"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Hive images are CBOR-encoded subtrees. The image holds names, tags and raw
// payloads only; handles, timestamps and reflection state do not persist.

type imageKey struct {
	Name     string       `cbor:"name"`
	Values   []imageValue `cbor:"values,omitempty"`
	Children []imageKey   `cbor:"children,omitempty"`
}

type imageValue struct {
	Name string `cbor:"name"`
	Type uint32 `cbor:"type"`
	Data []byte `cbor:"data,omitempty"`
}

// SaveKey implements regpath.Backend: the subtree under h is written to file
// as a CBOR hive image.
func (s *Store) SaveKey(h regpath.Handle, file string) error {
	s.mu.Lock()
	n, err := s.resolve(h)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	img := exportKey(n)
	s.mu.Unlock()

	data, err := cbor.Marshal(img)
	if err != nil {
		return fmt.Errorf("memreg: encode image: %w", err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("memreg: write image: %w", err)
	}
	return nil
}

// LoadKey implements regpath.Backend: the hive image in file is attached as
// a sub-key of h named name. An existing sub-key of that name is an error.
func (s *Store) LoadKey(h regpath.Handle, name, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("memreg: read image: %w", err)
	}
	var img imageKey
	if err := cbor.Unmarshal(data, &img); err != nil {
		return fmt.Errorf("memreg: decode image: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.resolve(h)
	if err != nil {
		return err
	}
	if _, c := n.child(name); c != nil {
		return fmt.Errorf("%w: %q", ErrLoadTarget, name)
	}
	loaded := importKey(img)
	loaded.name = name
	n.children = append(n.children, loaded)
	n.modTime = time.Now()
	return nil
}

// storeImage is the serialized form of a whole Store, keyed by canonical
// hive name. Linked remotes are not part of the image.
type storeImage struct {
	Hives map[string]imageKey `cbor:"hives"`
}

// SaveImage writes the entire store, all seven hives, to file as a CBOR
// store image.
func (s *Store) SaveImage(file string) error {
	s.mu.Lock()
	img := storeImage{Hives: make(map[string]imageKey, len(s.roots))}
	for hk, n := range s.roots {
		img.Hives[types.HKeyName(hk)] = exportKey(n)
	}
	s.mu.Unlock()

	data, err := cbor.Marshal(img)
	if err != nil {
		return fmt.Errorf("memreg: encode store image: %w", err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("memreg: write store image: %w", err)
	}
	return nil
}

// LoadImage builds a Store from a file written by SaveImage. Hives absent
// from the image come up empty.
func LoadImage(file string) (*Store, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("memreg: read store image: %w", err)
	}
	var img storeImage
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("memreg: decode store image: %w", err)
	}

	s := New()
	for name, ik := range img.Hives {
		hk, ok := types.HiveKeys[types.CanonicalHive(name)]
		if !ok {
			return nil, fmt.Errorf("memreg: store image: %w: %q", types.ErrUnknownHive, name)
		}
		n := importKey(ik)
		n.name = types.CanonicalHive(name)
		s.roots[hk] = n
	}
	return s, nil
}

func exportKey(n *node) imageKey {
	img := imageKey{Name: n.name}
	for _, v := range n.values {
		img.Values = append(img.Values, imageValue{
			Name: v.name,
			Type: uint32(v.typ),
			Data: cloneBytes(v.data),
		})
	}
	for _, c := range n.children {
		img.Children = append(img.Children, exportKey(c))
	}
	return img
}

func importKey(img imageKey) *node {
	n := &node{name: img.Name, modTime: time.Now()}
	for _, v := range img.Values {
		n.values = append(n.values, value{
			name: v.Name,
			typ:  types.RegType(v.Type),
			data: cloneBytes(v.Data),
		})
	}
	for _, c := range img.Children {
		n.children = append(n.children, importKey(c))
	}
	return n
}
