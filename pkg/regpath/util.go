package regpath

// Flush forces the backend to persist pending writes for this key.
func (p *Path) Flush() error {
	if err := p.Open(); err != nil {
		return err
	}
	return p.reg.backend.Flush(p.handle)
}

// LoadFrom attaches the hive image in file as a sub-key named name under
// this key.
func (p *Path) LoadFrom(name, file string) error {
	if err := p.Open(); err != nil {
		return err
	}
	return p.reg.backend.LoadKey(p.handle, name, file)
}

// SaveTo writes the subtree under this key as a hive image to file.
func (p *Path) SaveTo(file string) error {
	if err := p.Open(); err != nil {
		return err
	}
	return p.reg.backend.SaveKey(p.handle, file)
}

// Reflection reports whether registry reflection is enabled for this key.
// Only meaningful on dual-view systems; elsewhere the backend answers
// enabled.
func (p *Path) Reflection() (bool, error) {
	if err := p.Open(); err != nil {
		return false, err
	}
	disabled, err := p.reg.backend.QueryReflection(p.handle)
	return !disabled, err
}

// SetReflection enables or disables reflection for this key.
func (p *Path) SetReflection(enabled bool) error {
	if err := p.Open(); err != nil {
		return err
	}
	return p.reg.backend.SetReflection(p.handle, !enabled)
}
