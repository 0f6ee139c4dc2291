package regpath

import (
	"fmt"
	"io"

	"github.com/neko-neko-nyan/regpath/internal/valcodec"
	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// GetValue returns the named value's data, decoded per its type tag (the tag
// itself is discarded). The empty name reads the default value.
func (p *Path) GetValue(name string) (any, error) {
	if err := p.Open(); err != nil {
		return nil, err
	}
	data, typ, err := p.reg.backend.GetValue(p.handle, name)
	if err != nil {
		return nil, err
	}
	return valcodec.Decode(data, typ)
}

// SetValue writes the named value with an inferred type tag: strings store
// as REG_SZ, integers as REG_DWORD or REG_QWORD by range, []string as
// REG_MULTI_SZ, nil as REG_NONE. Use SetValueTyped for anything else.
func (p *Path) SetValue(name string, value any) error {
	return p.SetValueTyped(name, value, types.NoHint())
}

// SetValueTyped writes the named value with an explicit type hint. Inference
// and encoding failures are raised before any backend call.
func (p *Path) SetValueTyped(name string, value any, hint types.Hint) error {
	typ, err := types.Infer(hint, value)
	if err != nil {
		return err
	}
	data, err := valcodec.Encode(value, typ)
	if err != nil {
		return err
	}
	if err := p.Open(); err != nil {
		return err
	}
	if err := p.reg.backend.SetValue(p.handle, name, typ, data); err != nil {
		return fmt.Errorf("set %s[%q]: %w", p, name, err)
	}
	return nil
}

// DeleteValue removes the named value; missing values fail not-found.
func (p *Path) DeleteValue(name string) error {
	if err := p.Open(); err != nil {
		return err
	}
	return p.reg.backend.DeleteValue(p.handle, name)
}

// Default returns the key's default value.
func (p *Path) Default() (any, error) { return p.GetValue("") }

// SetDefault writes the key's default value.
func (p *Path) SetDefault(value any) error { return p.SetValue("", value) }

// Item is one enumerated value entry: the name (empty for the default value)
// and the decoded data. The type tag is consumed during decoding and not
// exposed here.
type Item struct {
	Name string
	Data any
}

// ValueIterator lazily enumerates value entries. The count is queried once;
// Next returns io.EOF when exhausted.
type ValueIterator struct {
	p     *Path
	count int
	i     int
}

// IterItems starts a lazy enumeration of value entries, in backend
// enumeration order.
func (p *Path) IterItems() (*ValueIterator, error) {
	if err := p.Open(); err != nil {
		return nil, err
	}
	st, err := p.reg.backend.Stat(p.handle)
	if err != nil {
		return nil, err
	}
	return &ValueIterator{p: p, count: st.ValueCount}, nil
}

// Next returns the next value entry, or io.EOF when exhausted.
func (it *ValueIterator) Next() (Item, error) {
	if it.i >= it.count {
		return Item{}, io.EOF
	}
	name, data, typ, err := it.p.reg.backend.EnumValue(it.p.handle, it.i)
	if err != nil {
		return Item{}, err
	}
	decoded, err := valcodec.Decode(data, typ)
	if err != nil {
		return Item{}, fmt.Errorf("decode %s[%q]: %w", it.p, name, err)
	}
	it.i++
	return Item{Name: name, Data: decoded}, nil
}

// Items eagerly collects all value entries.
func (p *Path) Items() ([]Item, error) {
	it, err := p.IterItems()
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, it.count)
	for {
		item, err := it.Next()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// ValueNames collects the names of all value entries.
func (p *Path) ValueNames() ([]string, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}

// ValueData collects the decoded data of all value entries.
func (p *Path) ValueData() ([]any, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	data := make([]any, len(items))
	for i, item := range items {
		data[i] = item.Data
	}
	return data, nil
}

// Map collects all value entries into a name-to-data map. Names are unique
// within a key, so no entry overwrites another.
func (p *Path) Map() (map[string]any, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	m := make(map[string]any, len(items))
	for _, item := range items {
		m[item.Name] = item.Data
	}
	return m, nil
}
