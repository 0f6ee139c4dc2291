package regpath

import (
	"fmt"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Open materializes the backend handle. It is a no-op on an already open
// path, so every operation can call it unconditionally. Local hive roots are
// open from registration and never re-open.
//
// Remote paths connect to the host's hive root first; a remote hive root
// adopts that connection as its handle, while a deeper remote path opens the
// sub-key under it and releases the intermediate connection.
func (p *Path) Open() error {
	if p.IsOpen() {
		return nil
	}

	if p.IsRemote() {
		hk, ok := p.HiveKey()
		if !ok {
			return fmt.Errorf("%w: %q", types.ErrUnknownHive, p.HiveName())
		}
		conn, err := p.reg.backend.Connect(p.host, hk)
		if err != nil {
			return fmt.Errorf("connect %s: %w", p.host, err)
		}
		if p.IsHive() {
			p.handle = conn
			return nil
		}
		h, err := p.reg.backend.Open(conn, p.subPath(), types.KEY_READ)
		_ = p.reg.backend.Close(conn)
		if err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
		p.handle = h
		return nil
	}

	hive, ok := p.Hive()
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownHive, p.HiveName())
	}
	h, err := p.reg.backend.Open(hive.handle, p.subPath(), types.KEY_READ)
	if err != nil {
		return fmt.Errorf("open %s: %w", p, err)
	}
	p.handle = h
	return nil
}

// Close releases the handle. Idempotent; a local hive root keeps its
// process-wide pseudo-handle and is never closed, while remote hive
// connections are. Errors during release are discarded.
func (p *Path) Close() {
	if !p.IsOpen() {
		return
	}
	if p.IsHive() && !p.IsRemote() {
		return
	}
	_ = p.reg.backend.Close(p.handle)
	p.handle = InvalidHandle
}

// WithOpen opens the path, runs fn, and closes on every exit path.
func (p *Path) WithOpen(fn func(*Path) error) error {
	if err := p.Open(); err != nil {
		return err
	}
	defer p.Close()
	return fn(p)
}
