package bench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cuckoo/cuckoo"
)

// ErrTableFile is returned for a parameter table file that cannot be decoded
// or fails schema validation.
var ErrTableFile = errors.New("bench: invalid table file")

// tableValidate is shared; validator.Validate caches struct metadata.
var tableValidate = validator.New(validator.WithRequiredStructEnabled())

// tableFile is the YAML schema:
//
//	sizes:
//	  10:
//	    nests: 50
//	    max_iterations: 500
//	    abandon_probability: 0.6
//	    step_scale: 1.5
//	    stability: 1.5
type tableFile struct {
	Sizes map[int]tableEntry `yaml:"sizes" validate:"required,min=1,dive,keys,gte=2,endkeys"`
}

type tableEntry struct {
	Nests              int      `yaml:"nests" validate:"required,gt=0"`
	MaxIterations      int      `yaml:"max_iterations" validate:"required,gt=0"`
	AbandonProbability *float64 `yaml:"abandon_probability" validate:"required,gte=0,lte=1"`
	StepScale          float64  `yaml:"step_scale" validate:"required,gt=0"`
	Stability          float64  `yaml:"stability" validate:"required,gt=0"`
}

// LoadTable reads a YAML parameter table from path.
//
// Errors: ErrTableFile (decode or schema), cuckoo.ErrInvalidParameter (an
// entry the search would reject), or the underlying file error.
func LoadTable(path string) (cuckoo.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tab, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tab, nil
}

// ParseTable decodes and validates a YAML parameter table. The struct schema
// is checked first; cuckoo.Table.Validate then applies the search's own rules.
func ParseTable(r io.Reader) (cuckoo.Table, error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableFile, err)
	}
	if err := tableValidate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableFile, err)
	}

	tab := make(cuckoo.Table, len(file.Sizes))
	for n, e := range file.Sizes {
		tab[n] = cuckoo.Config{
			Nests:              e.Nests,
			MaxIterations:      e.MaxIterations,
			AbandonProbability: *e.AbandonProbability,
			StepScale:          e.StepScale,
			Stability:          e.Stability,
		}
	}
	if err := tab.Validate(); err != nil {
		return nil, err
	}

	return tab, nil
}

// EncodeTable writes tab in the LoadTable format.
func EncodeTable(w io.Writer, tab cuckoo.Table) error {
	file := tableFile{Sizes: make(map[int]tableEntry, len(tab))}
	for n, c := range tab {
		p := c.AbandonProbability
		file.Sizes[n] = tableEntry{
			Nests:              c.Nests,
			MaxIterations:      c.MaxIterations,
			AbandonProbability: &p,
			StepScale:          c.StepScale,
			Stability:          c.Stability,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}

	return enc.Close()
}
