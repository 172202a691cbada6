// Package ooxml reads parts of Office Open XML packages held in memory.
package ooxml

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// MaxPartSize bounds the decompressed size of a single part.
const MaxPartSize = 256 << 20

var (
	// ErrNotPackage is returned when the bytes are not a zip container.
	ErrNotPackage = errors.New("not an OOXML package")

	// ErrPartMissing is returned when a requested part does not exist.
	ErrPartMissing = errors.New("package part missing")

	// ErrPartTooLarge is returned when a part exceeds MaxPartSize.
	ErrPartTooLarge = errors.New("package part too large")
)

// Package is an opened OOXML container.
type Package struct {
	files map[string]*zip.File
	names []string
}

// Open opens an OOXML container from memory.
func Open(content []byte) (*Package, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPackage, err)
	}

	p := &Package{files: make(map[string]*zip.File, len(reader.File))}
	for _, f := range reader.File {
		p.files[f.Name] = f
		p.names = append(p.names, f.Name)
	}
	return p, nil
}

// Has reports whether the package contains the named part.
func (p *Package) Has(name string) bool {
	_, ok := p.files[name]
	return ok
}

// Names returns the part names in archive order.
func (p *Package) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Read returns the decompressed bytes of a part.
func (p *Package) Read(name string) ([]byte, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) > MaxPartSize {
		return nil, fmt.Errorf("%w: %s", ErrPartTooLarge, name)
	}
	return data, nil
}

// ResolveTarget resolves a relationship target against the directory of
// the source part, e.g. ("ppt", "slides/slide1.xml") -> "ppt/slides/slide1.xml".
// Absolute targets are taken from the package root.
func ResolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
