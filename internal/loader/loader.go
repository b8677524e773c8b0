// SPDX-License-Identifier: MIT

// Package loader decodes YAML matrix documents for the matcheck command.
//
// A document lists entries; each entry names a subject, the predicate to run
// and its data, either a matrix (rows) or a vector (values, or rows holding a
// single column):
//
//	entries:
//	  - name: Sigma
//	    check: cov
//	    rows: [[1, 0.5], [0.5, 2]]
//	  - name: theta
//	    check: finite
//	    values: [1, .inf]
//
// YAML's .nan, .inf and -.inf decode to the corresponding float64 values.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvcheck/matrix"
	"gopkg.in/yaml.v3"
)

// Kind names a predicate in a document.
type Kind string

// Supported predicates.
const (
	KindSquare       Kind = "square"
	KindSymmetric    Kind = "symmetric"
	KindPosDefinite  Kind = "pos_definite"
	KindCov          Kind = "cov"
	KindCovSymmetric Kind = "cov_symmetric"
	KindCorr         Kind = "corr"
	KindNotNaN       Kind = "not_nan"
	KindNotNaNMatrix Kind = "not_nan_matrix"
	KindFinite       Kind = "finite"
	KindFiniteMatrix Kind = "finite_matrix"
	KindSameLength   Kind = "same_length"

	// KindSampleCov and KindSampleCorr treat rows as observations and validate
	// the sample covariance/correlation of their columns.
	KindSampleCov  Kind = "sample_cov"
	KindSampleCorr Kind = "sample_corr"
)

// vectorKinds take values; every other kind takes rows.
var vectorKinds = map[Kind]bool{
	KindNotNaN:     true,
	KindFinite:     true,
	KindSameLength: true,
}

// knownKinds is the set accepted by Validate.
var knownKinds = map[Kind]bool{
	KindSquare: true, KindSymmetric: true, KindPosDefinite: true,
	KindCov: true, KindCovSymmetric: true, KindCorr: true,
	KindNotNaN: true, KindNotNaNMatrix: true,
	KindFinite: true, KindFiniteMatrix: true, KindSameLength: true,
	KindSampleCov: true, KindSampleCorr: true,
}

var (
	// ErrUnknownCheck reports an entry whose check is not a supported Kind.
	ErrUnknownCheck = errors.New("loader: unknown check")

	// ErrMissingData reports an entry without the rows/values its check needs.
	ErrMissingData = errors.New("loader: missing data")

	// ErrMissingName reports an entry without a name.
	ErrMissingName = errors.New("loader: missing name")
)

// Document is one decoded file.
type Document struct {
	// Source is the file the document came from; the default function label.
	Source  string  `yaml:"-"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one subject to validate.
type Entry struct {
	Name     string      `yaml:"name"`
	Check    Kind        `yaml:"check"`
	Function string      `yaml:"function,omitempty"`
	Rows     [][]float64 `yaml:"rows,omitempty"`
	Values   []float64   `yaml:"values,omitempty"`
	// Other is the second vector of a same_length check.
	Other []float64 `yaml:"other,omitempty"`
}

// IsVector reports whether the entry's check consumes Values rather than Rows.
func (e Entry) IsVector() bool { return vectorKinds[e.Check] }

// Vector returns Values, or the single column of Rows when a vector check is
// given column-vector data.
func (e Entry) Vector() ([]float64, error) {
	if e.Values != nil {
		return e.Values, nil
	}
	m, err := e.Matrix()
	if err != nil {
		return nil, err
	}
	if m.Cols() != 1 {
		return nil, fmt.Errorf("loader: entry %q: %w: %s rows must have one column, got %d",
			e.Name, ErrMissingData, e.Check, m.Cols())
	}

	return matrix.Column(m, 0)
}

// Matrix materializes Rows as a Dense. An explicit empty list yields 0×0.
func (e Entry) Matrix() (*matrix.Dense, error) {
	m, err := matrix.FromRows(e.Rows)
	if err != nil {
		return nil, fmt.Errorf("loader: entry %q: %w", e.Name, err)
	}

	return m, nil
}

// Validate checks the entry is runnable.
func (e Entry) Validate() error {
	if e.Name == "" {
		return ErrMissingName
	}
	if !knownKinds[e.Check] {
		return fmt.Errorf("entry %q: %w %q", e.Name, ErrUnknownCheck, e.Check)
	}
	if e.IsVector() {
		if e.Values == nil && e.Rows == nil {
			return fmt.Errorf("entry %q: %w: %s needs values", e.Name, ErrMissingData, e.Check)
		}
		if e.Check == KindSameLength && e.Other == nil {
			return fmt.Errorf("entry %q: %w: %s needs other", e.Name, ErrMissingData, e.Check)
		}
		return nil
	}
	if e.Rows == nil {
		return fmt.Errorf("entry %q: %w: %s needs rows", e.Name, ErrMissingData, e.Check)
	}

	return nil
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader, source string) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{Source: source}
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("loader: %s: %w", source, err)
	}
	for i, e := range doc.Entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("loader: %s: entries[%d]: %w", source, i, err)
		}
	}

	return doc, nil
}

// Load opens path and decodes it; the file's base name without extension
// becomes the document Source.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	return Decode(f, strings.TrimSuffix(base, filepath.Ext(base)))
}
