// SPDX-License-Identifier: MIT

package plotstyle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML style. Fields absent from the document keep their
// Default() values; unknown fields are rejected. An empty document yields
// Default().
//
// Errors: decoding errors, ErrInvalidStyle.
func Load(r io.Reader) (Style, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, styleErrorf("Load", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, styleErrorf("Load", err)
	}

	return s, nil
}

// LoadFile is Load on the contents of path.
func LoadFile(path string) (Style, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Style{}, styleErrorf("LoadFile", err)
	}
	s, err := Load(bytes.NewReader(raw))
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
