// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides the static, ordered list of celestial body
// specifications that an orrery scene is composed from.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultTOML []byte

// RingSpec specifies a flat annulus around a body.
type RingSpec struct {

	// Inner is the inner radius of the annulus, which must be less than Outer.
	Inner float32 `toml:"inner" yaml:"inner"`

	// Outer is the outer radius of the annulus.
	Outer float32 `toml:"outer" yaml:"outer"`

	// Texture is the path of the ring surface image.
	Texture string `toml:"texture" yaml:"texture"`
}

// BodySpec specifies one celestial body: the star or a planet.
type BodySpec struct {

	// Name identifies the body, and must be unique within a catalog.
	Name string `toml:"name" yaml:"name"`

	// Star marks the central body, which is composed first and
	// rendered without lighting.
	Star bool `toml:"star" yaml:"star"`

	// Size is the sphere radius, in scene units.
	Size float32 `toml:"size" yaml:"size"`

	// Texture is the path of the surface image.
	Texture string `toml:"texture" yaml:"texture"`

	// OrbitRadius is the distance from the origin along the X axis
	// of the body's orbit group.
	OrbitRadius float32 `toml:"orbit_radius" yaml:"orbit_radius"`

	// SpinRate is the self-rotation in radians per frame.
	// The sign gives the direction.
	SpinRate float32 `toml:"spin_rate" yaml:"spin_rate"`

	// OrbitRate is the revolution around the origin in radians per frame.
	OrbitRate float32 `toml:"orbit_rate" yaml:"orbit_rate"`

	// Ring is the optional ring around the body.
	Ring *RingSpec `toml:"ring,omitempty" yaml:"ring,omitempty"`
}

// Catalog is an ordered list of body specifications.
type Catalog struct {
	Bodies []BodySpec `toml:"bodies" yaml:"bodies"`
}

// Default returns a new copy of the built-in solar system catalog:
// the sun and nine planets.
func Default() *Catalog {
	c, err := Read(defaultTOML, ".toml")
	if err != nil {
		panic(fmt.Errorf("catalog: built-in catalog is invalid: %w", err))
	}
	return c
}

// Read parses a catalog from the given bytes, in the format implied by
// the given file extension: .toml, .yaml or .yml.
func Read(b []byte, ext string) (*Catalog, error) {
	c := &Catalog{}
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("catalog: unsupported file extension %q", ext)
	}
	return c, nil
}

// Open reads a catalog from the given file in the given filesystem.
func Open(fsys fs.FS, filename string) (*Catalog, error) {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	c, err := Read(b, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", filename, err)
	}
	return c, nil
}

// OpenFile reads a catalog from the given file on the OS filesystem.
func OpenFile(filename string) (*Catalog, error) {
	dir, file := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	return Open(os.DirFS(dir), file)
}

// Body returns the spec with the given name, or nil if there is none.
func (c *Catalog) Body(name string) *BodySpec {
	for i := range c.Bodies {
		if c.Bodies[i].Name == name {
			return &c.Bodies[i]
		}
	}
	return nil
}

// Sorted returns the bodies in composition order: the star first, then the
// planets by increasing orbit radius. Ties keep catalog order.
func (c *Catalog) Sorted() []BodySpec {
	bs := slices.Clone(c.Bodies)
	slices.SortStableFunc(bs, func(a, b BodySpec) int {
		ac, bc := a.isCentral(), b.isCentral()
		switch {
		case ac && !bc:
			return -1
		case bc && !ac:
			return 1
		}
		switch {
		case a.OrbitRadius < b.OrbitRadius:
			return -1
		case a.OrbitRadius > b.OrbitRadius:
			return 1
		}
		return 0
	})
	return bs
}

func (bs *BodySpec) isCentral() bool {
	return bs.Star || bs.OrbitRadius == 0
}

// Validate checks the catalog for configuration defects. All problems found
// are joined into the returned error.
func (c *Catalog) Validate() error {
	if len(c.Bodies) == 0 {
		return errors.New("catalog: no bodies")
	}
	var errs []error
	names := map[string]bool{}
	stars := 0
	for i := range c.Bodies {
		bs := &c.Bodies[i]
		if bs.Name == "" {
			errs = append(errs, fmt.Errorf("catalog: body %d has no name", i))
		} else if names[bs.Name] {
			errs = append(errs, fmt.Errorf("catalog: duplicate body name %q", bs.Name))
		}
		names[bs.Name] = true
		if bs.Star {
			stars++
		}
		if err := bs.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if stars > 1 {
		errs = append(errs, fmt.Errorf("catalog: %d bodies are marked as star; at most one is allowed", stars))
	}
	return errors.Join(errs...)
}

// Validate checks the geometry and texture parameters of the body.
func (bs *BodySpec) Validate() error {
	var errs []error
	if !(bs.Size > 0) {
		errs = append(errs, fmt.Errorf("catalog: %s: size must be positive, got %g", bs.Name, bs.Size))
	}
	if !(bs.OrbitRadius >= 0) {
		errs = append(errs, fmt.Errorf("catalog: %s: orbit radius must not be negative, got %g", bs.Name, bs.OrbitRadius))
	}
	if bs.Texture == "" {
		errs = append(errs, fmt.Errorf("catalog: %s: texture path is empty", bs.Name))
	}
	if bs.Ring != nil {
		if err := bs.Ring.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("catalog: %s: %w", bs.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the ring is a proper annulus.
func (rs *RingSpec) Validate() error {
	if !(rs.Inner < rs.Outer) {
		return fmt.Errorf("ring inner radius %g must be less than outer radius %g", rs.Inner, rs.Outer)
	}
	if rs.Inner < 0 {
		return fmt.Errorf("ring inner radius must not be negative, got %g", rs.Inner)
	}
	if rs.Texture == "" {
		return errors.New("ring texture path is empty")
	}
	return nil
}
