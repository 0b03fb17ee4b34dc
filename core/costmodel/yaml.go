// core/costmodel/yaml.go
package costmodel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a cost model:
//
//	gap: 30
//	substitution:
//	  A: {A: 0, C: 110, G: 48, T: 94}
//	  C: {A: 110, C: 0, G: 118, T: 48}
//	  ...
type document struct {
	Gap          *int                      `yaml:"gap"`
	Substitution map[string]map[string]int `yaml:"substitution"`
}

// MarshalYAML implements yaml.Marshaler.
func (m *Model) MarshalYAML() (any, error) {
	gap := m.Gap
	doc := document{Gap: &gap, Substitution: map[string]map[string]int{}}
	for i := 0; i < len(Symbols); i++ {
		row := make(map[string]int, len(Symbols))
		for j := 0; j < len(Symbols); j++ {
			row[Symbols[j:j+1]] = m.Sub[i][j]
		}
		doc.Substitution[Symbols[i:i+1]] = row
	}
	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Every ordered pair of symbols
// must be present.
func (m *Model) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return err
	}
	if doc.Gap == nil {
		return fmt.Errorf("line %d: missing gap", value.Line)
	}
	var out Model
	out.Gap = *doc.Gap
	for k := range doc.Substitution {
		if _, ok := symbolKey(k); !ok {
			return fmt.Errorf("line %d: unknown symbol %q", value.Line, k)
		}
	}
	for i := 0; i < len(Symbols); i++ {
		a := Symbols[i : i+1]
		row, ok := doc.Substitution[a]
		if !ok {
			return fmt.Errorf("line %d: missing substitution row %s", value.Line, a)
		}
		for k := range row {
			if _, ok := symbolKey(k); !ok {
				return fmt.Errorf("line %d: unknown symbol %q in row %s", value.Line, k, a)
			}
		}
		for j := 0; j < len(Symbols); j++ {
			b := Symbols[j : j+1]
			v, ok := row[b]
			if !ok {
				return fmt.Errorf("line %d: missing substitution %s-%s", value.Line, a, b)
			}
			out.Sub[i][j] = v
		}
	}
	*m = out
	return nil
}

func symbolKey(k string) (int, bool) {
	if len(k) != 1 {
		return -1, false
	}
	return Index(k[0])
}

// Load decodes and validates a YAML cost model.
func Load(r io.Reader) (*Model, error) {
	var m Model
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty cost model")
		}
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile is Load on the named file; errors carry the path.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode writes m as YAML.
func Encode(w io.Writer, m *Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
