// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package descriptor implements the classification
// of metadata descriptors
// into numerical and categorical types,
// with the value domain used by color scales,
// axes,
// and binning.
package descriptor

import (
	"slices"

	"github.com/js-arias/phylotab/metadata"
	"gonum.org/v1/gonum/floats"
)

// A Type is the statistical type of a descriptor.
type Type int

// Valid descriptor types.
const (
	Categorical Type = iota
	Numerical
)

func (t Type) String() string {
	switch t {
	case Categorical:
		return "categorical"
	case Numerical:
		return "numerical"
	}
	return "unknown"
}

// Thresholds for the numerical classification.
// A descriptor is numerical
// only if more than numFraction of its non-missing values
// parse as finite numbers,
// and it has more than maxLevels distinct values.
// A fully numeric descriptor with few distinct values
// (for example a small integer code)
// behaves as a category for coloring and legends,
// so it is classified as categorical.
const (
	numFraction = 0.8
	maxLevels   = 6
)

// Info is the inferred type and domain of a descriptor.
type Info struct {
	// Type of the descriptor.
	Type Type

	// Min and Max are the domain of a numerical descriptor,
	// taken over the parsed numeric values
	// (missing and NA values are excluded).
	Min, Max float64

	// Levels is the domain of a categorical descriptor:
	// the distinct raw values,
	// sorted lexicographically
	// (never numerically,
	// so "10" sorts before "2").
	Levels []string
}

// Classify infers the type and domain
// of each of the given descriptors
// over a set of records.
// It is a pure function of its inputs:
// classification is expected to run once
// over the full unfiltered record set,
// so that domains remain stable
// under any later filtering.
func Classify(recs []metadata.Record, keys []string) map[string]Info {
	infos := make(map[string]Info, len(keys))
	for _, k := range keys {
		infos[k] = classify(recs, k)
	}
	return infos
}

func classify(recs []metadata.Record, key string) Info {
	var nums []float64
	distinct := make(map[string]bool)
	var total int
	for _, r := range recs {
		v := r.Descriptors[key]
		if v.Kind() == metadata.Missing {
			continue
		}
		total++
		distinct[v.String()] = true
		if v.Kind() == metadata.Number {
			nums = append(nums, v.Float())
		}
	}
	if total == 0 {
		return Info{Type: Categorical}
	}

	if float64(len(nums))/float64(total) > numFraction && len(distinct) > maxLevels {
		return Info{
			Type: Numerical,
			Min:  floats.Min(nums),
			Max:  floats.Max(nums),
		}
	}

	levels := make([]string, 0, len(distinct))
	for v := range distinct {
		levels = append(levels, v)
	}
	slices.Sort(levels)
	return Info{Type: Categorical, Levels: levels}
}
