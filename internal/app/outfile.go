// internal/app/outfile.go
package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// pendingFile is written next to its target and renamed over it on Commit.
// Until then an existing output is left untouched.
type pendingFile struct {
	*os.File
	target string
	done   bool
}

func createPending(target string) (*pendingFile, error) {
	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", target, err)
	}
	return &pendingFile{File: f, target: target}, nil
}

// Commit closes the temporary file and moves it into place.
func (p *pendingFile) Commit() error {
	if err := p.Chmod(0o644); err != nil {
		p.Discard()
		return fmt.Errorf("writing %s: %w", p.target, err)
	}
	if err := p.Close(); err != nil {
		p.Discard()
		return fmt.Errorf("closing %s: %w", p.target, err)
	}
	if err := os.Rename(p.Name(), p.target); err != nil {
		p.Discard()
		return fmt.Errorf("writing %s: %w", p.target, err)
	}
	p.done = true
	return nil
}

// Discard removes the temporary file; a no-op after Commit.
func (p *pendingFile) Discard() {
	if p.done {
		return
	}
	p.done = true
	_ = p.Close()
	_ = os.Remove(p.Name())
}
