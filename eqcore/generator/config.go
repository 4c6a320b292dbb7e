/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package generator implements the equation generation pipeline: typed
// value sampling, expression synthesis, initial equation building per
// family, solution-preserving complication, and the orchestrating
// Generator with its result accessors.
package generator

import (
	"encoding/json"
	"fmt"
	"sort"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model/equation"
	"dirpx.dev/eqgen/eqcore/model/operation"
	"dirpx.dev/eqgen/eqcore/model/value"
)

// MaxRangeBound is the hard upper bound on expression length and
// complication depth, enforced at configuration time so worst-case
// generation work stays finite.
const MaxRangeBound = 100

// Config is the complete generation configuration. Every field is
// validated eagerly by its setter; a rejected value leaves the prior
// configuration intact. Getters return defensive copies of map-valued
// fields, so accepted values round-trip unchanged.
//
// A Config is owned by a single Generator; it is not safe for concurrent
// mutation.
type Config struct {
	family         equation.Family
	lengthMin      int
	lengthMax      int
	depthMin       int
	depthMax       int
	kindWeights    map[value.Kind]float64
	ranges         value.Ranges
	actionWeights  operation.Weights
	actionTexts    operation.Texts
	symbolWeights  map[string]float64
	symbolsDensity float64
	logLevel       int
}

// NewConfig returns the default configuration: linear family, expression
// length (1,5), complication depth (2,5), kind weights integer 0.4 /
// float 0.2 / fraction 0.4, the default sampling ranges, the default
// action weights and texts, symbols x 0.8 / y 0.2, density 0.3, log
// level 1.
func NewConfig() *Config {
	return &Config{
		family:    equation.FamilyLinear,
		lengthMin: 1,
		lengthMax: 5,
		depthMin:  2,
		depthMax:  5,
		kindWeights: map[value.Kind]float64{
			value.KindInteger:  0.4,
			value.KindFloat:    0.2,
			value.KindFraction: 0.4,
		},
		ranges:        value.DefaultRanges(),
		actionWeights: operation.DefaultWeights(),
		actionTexts:   operation.DefaultTexts(),
		symbolWeights: map[string]float64{
			"x": 0.8,
			"y": 0.2,
		},
		symbolsDensity: 0.3,
		logLevel:       1,
	}
}

// SetFamily sets the initial-equation family.
func (c *Config) SetFamily(f equation.Family) error {
	if err := f.Validate(); err != nil {
		return err
	}
	c.family = f
	return nil
}

// Family returns the configured initial-equation family.
func (c *Config) Family() equation.Family {
	return c.family
}

// SetExpressionLength sets the synthesizer fold-count range. Both bounds
// must be positive, min <= max <= MaxRangeBound.
func (c *Config) SetExpressionLength(min, max int) error {
	if err := validateBounds("ExpressionLength", min, max); err != nil {
		return err
	}
	c.lengthMin, c.lengthMax = min, max
	return nil
}

// ExpressionLength returns the configured synthesizer fold-count range.
func (c *Config) ExpressionLength() (min, max int) {
	return c.lengthMin, c.lengthMax
}

// SetComplicationDepth sets the complication step-count range. Both
// bounds must be positive, min <= max <= MaxRangeBound.
func (c *Config) SetComplicationDepth(min, max int) error {
	if err := validateBounds("ComplicationDepth", min, max); err != nil {
		return err
	}
	c.depthMin, c.depthMax = min, max
	return nil
}

// ComplicationDepth returns the configured complication step-count range.
func (c *Config) ComplicationDepth() (min, max int) {
	return c.depthMin, c.depthMax
}

func validateBounds(field string, min, max int) error {
	if min <= 0 || max <= 0 {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  field,
			Reason: "bounds must be positive",
			Value:  fmt.Sprintf("(%d,%d)", min, max),
		}
	}
	if min > max {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  field,
			Reason: "min must not exceed max",
			Value:  fmt.Sprintf("(%d,%d)", min, max),
		}
	}
	if max > MaxRangeBound {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  field,
			Reason: fmt.Sprintf("max must not exceed %d", MaxRangeBound),
			Value:  fmt.Sprintf("(%d,%d)", min, max),
		}
	}
	return nil
}

// SetKindWeights sets the numeric-kind probability table. Weights are
// relative and need not sum to 1; each must lie in [0,1], every key must
// be a valid kind, and at least one weight must be positive.
func (c *Config) SetKindWeights(weights map[value.Kind]float64) error {
	if err := validateWeightTable("KindWeights", len(weights), func(yield func(string, float64)) {
		for k, w := range weights {
			yield(k.String(), w)
		}
	}); err != nil {
		return err
	}
	for k := range weights {
		if err := k.Validate(); err != nil {
			return err
		}
	}
	c.kindWeights = cloneKindWeights(weights)
	return nil
}

// KindWeights returns a copy of the configured numeric-kind probability
// table.
func (c *Config) KindWeights() map[value.Kind]float64 {
	return cloneKindWeights(c.kindWeights)
}

// SetRanges sets the per-kind sampling ranges. A range that admits only
// zero is rejected here because the zero-excluding sampler could never
// draw from it.
func (c *Config) SetRanges(r value.Ranges) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := validateSamplable(r); err != nil {
		return err
	}
	c.ranges = r
	return nil
}

func validateSamplable(r value.Ranges) error {
	if r.Integer.OnlyZero() {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "Ranges.Integer",
			Reason: "range MUST admit a nonzero value",
			Value:  r.Integer.String(),
		}
	}
	// Float draws round to the display precision before the zero check,
	// so a range whose endpoints both round to zero admits no usable
	// value either.
	if value.RoundFloat(r.Float.Min) == 0 && value.RoundFloat(r.Float.Max) == 0 {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "Ranges.Float",
			Reason: "range MUST admit a value that is nonzero after rounding",
			Value:  r.Float.String(),
		}
	}
	if r.Fraction.Numerator.OnlyZero() {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "Ranges.Fraction.Numerator",
			Reason: "range MUST admit a nonzero value",
			Value:  r.Fraction.Numerator.String(),
		}
	}
	return nil
}

// Ranges returns the configured per-kind sampling ranges.
func (c *Config) Ranges() value.Ranges {
	return c.ranges
}

// SetActionWeights sets the action probability table.
func (c *Config) SetActionWeights(w operation.Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	c.actionWeights = w.Clone()
	return nil
}

// ActionWeights returns a copy of the configured action probability
// table.
func (c *Config) ActionWeights() operation.Weights {
	return c.actionWeights.Clone()
}

// SetActionTexts sets the per-action text renderings. Rendering content
// is deliberately unchecked; each action only needs at least one
// candidate.
func (c *Config) SetActionTexts(t operation.Texts) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.actionTexts = t.Clone()
	return nil
}

// ActionTexts returns a copy of the configured per-action text
// renderings.
func (c *Config) ActionTexts() operation.Texts {
	return c.actionTexts.Clone()
}

// SetSymbolWeights sets the symbol selection table. At least one symbol
// is required; names must be non-empty, weights must lie in [0,1] with
// at least one positive.
func (c *Config) SetSymbolWeights(weights map[string]float64) error {
	if err := validateWeightTable("SymbolWeights", len(weights), func(yield func(string, float64)) {
		for name, w := range weights {
			yield(name, w)
		}
	}); err != nil {
		return err
	}
	for name := range weights {
		if name == "" {
			return &errors.ValidationError{
				Type:   "Config",
				Field:  "SymbolWeights",
				Reason: "symbol name must not be empty",
				Value:  name,
			}
		}
	}
	c.symbolWeights = cloneSymbolWeights(weights)
	return nil
}

// SymbolWeights returns a copy of the configured symbol selection table.
func (c *Config) SymbolWeights() map[string]float64 {
	return cloneSymbolWeights(c.symbolWeights)
}

// Symbols returns the configured symbol names in sorted order.
func (c *Config) Symbols() []string {
	names := make([]string, 0, len(c.symbolWeights))
	for name := range c.symbolWeights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetSymbolsDensity sets the probability that an operand draw yields a
// symbol instead of a numeric value. Must lie in [0,1].
func (c *Config) SetSymbolsDensity(density float64) error {
	if density < 0 || density > 1 {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "SymbolsDensity",
			Reason: "density must be in [0,1]",
			Value:  density,
		}
	}
	c.symbolsDensity = density
	return nil
}

// SymbolsDensity returns the configured symbol draw probability.
func (c *Config) SymbolsDensity() float64 {
	return c.symbolsDensity
}

// SetLogLevel sets the diagnostic verbosity threshold: 0 silences all
// diagnostics, 1-5 admit diagnostics whose level is <= the threshold.
func (c *Config) SetLogLevel(level int) error {
	if level < 0 || level > 5 {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "LogLevel",
			Reason: "level must be in [0,5]",
			Value:  level,
		}
	}
	c.logLevel = level
	return nil
}

// LogLevel returns the configured diagnostic verbosity threshold.
func (c *Config) LogLevel() int {
	return c.logLevel
}

// Validate checks the whole configuration, collecting every violation.
// Setter-constructed configurations are always valid; Validate exists for
// configurations decoded from files.
func (c *Config) Validate() error {
	collector := rxmerr.NewCollector()
	appendErr := func(err error) {
		if err != nil {
			collector.Append(err)
		}
	}
	appendErr(c.family.Validate())
	appendErr(validateBounds("ExpressionLength", c.lengthMin, c.lengthMax))
	appendErr(validateBounds("ComplicationDepth", c.depthMin, c.depthMax))
	appendErr(validateWeightTable("KindWeights", len(c.kindWeights), func(yield func(string, float64)) {
		for k, w := range c.kindWeights {
			yield(k.String(), w)
		}
	}))
	for k := range c.kindWeights {
		appendErr(k.Validate())
	}
	appendErr(c.ranges.Validate())
	appendErr(validateSamplable(c.ranges))
	appendErr(c.actionWeights.Validate())
	appendErr(c.actionTexts.Validate())
	appendErr(validateWeightTable("SymbolWeights", len(c.symbolWeights), func(yield func(string, float64)) {
		for name, w := range c.symbolWeights {
			yield(name, w)
		}
	}))
	if c.symbolsDensity < 0 || c.symbolsDensity > 1 {
		collector.Append(&errors.ValidationError{
			Type:   "Config",
			Field:  "SymbolsDensity",
			Reason: "density must be in [0,1]",
			Value:  c.symbolsDensity,
		})
	}
	if c.logLevel < 0 || c.logLevel > 5 {
		collector.Append(&errors.ValidationError{
			Type:   "Config",
			Field:  "LogLevel",
			Reason: "level must be in [0,5]",
			Value:  c.logLevel,
		})
	}
	return collector.Err()
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.kindWeights = cloneKindWeights(c.kindWeights)
	out.actionWeights = c.actionWeights.Clone()
	out.actionTexts = c.actionTexts.Clone()
	out.symbolWeights = cloneSymbolWeights(c.symbolWeights)
	return &out
}

// validateWeightTable checks a named weight table: non-empty, every
// weight in [0,1], at least one positive.
func validateWeightTable(field string, size int, each func(yield func(string, float64))) error {
	if size == 0 {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  field,
			Reason: "table must contain at least one entry",
			Value:  size,
		}
	}
	var bad error
	positive := false
	each(func(name string, w float64) {
		if bad != nil {
			return
		}
		if w < 0 || w > 1 {
			bad = &errors.ValidationError{
				Type:   "Config",
				Field:  field,
				Reason: fmt.Sprintf("weight for %q must be in [0,1]", name),
				Value:  w,
			}
			return
		}
		if w > 0 {
			positive = true
		}
	})
	if bad != nil {
		return bad
	}
	if !positive {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  field,
			Reason: "at least one weight must be positive",
			Value:  size,
		}
	}
	return nil
}

func cloneKindWeights(in map[value.Kind]float64) map[value.Kind]float64 {
	out := make(map[value.Kind]float64, len(in))
	for k, w := range in {
		out[k] = w
	}
	return out
}

func cloneSymbolWeights(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for name, w := range in {
		out[name] = w
	}
	return out
}

// boundsWire is the serialized form of a (min,max) pair.
type boundsWire struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// configWire is the serialized form of Config.
type configWire struct {
	Family           equation.Family        `json:"family" yaml:"family"`
	ExpressionLength boundsWire             `json:"expression_length" yaml:"expression_length"`
	Depth            boundsWire             `json:"complication_depth" yaml:"complication_depth"`
	KindWeights      map[value.Kind]float64 `json:"kind_weights" yaml:"kind_weights"`
	Ranges           value.Ranges           `json:"ranges" yaml:"ranges"`
	ActionWeights    operation.Weights      `json:"action_weights" yaml:"action_weights"`
	ActionTexts      operation.Texts        `json:"action_texts" yaml:"action_texts"`
	SymbolWeights    map[string]float64     `json:"symbol_weights" yaml:"symbol_weights"`
	SymbolsDensity   float64                `json:"symbols_density" yaml:"symbols_density"`
	LogLevel         int                    `json:"log_level" yaml:"log_level"`
}

func (c *Config) wire() configWire {
	return configWire{
		Family:           c.family,
		ExpressionLength: boundsWire{Min: c.lengthMin, Max: c.lengthMax},
		Depth:            boundsWire{Min: c.depthMin, Max: c.depthMax},
		KindWeights:      cloneKindWeights(c.kindWeights),
		Ranges:           c.ranges,
		ActionWeights:    c.actionWeights.Clone(),
		ActionTexts:      c.actionTexts.Clone(),
		SymbolWeights:    cloneSymbolWeights(c.symbolWeights),
		SymbolsDensity:   c.symbolsDensity,
		LogLevel:         c.logLevel,
	}
}

func (c *Config) fromWire(w configWire) error {
	decoded := &Config{
		family:         w.Family,
		lengthMin:      w.ExpressionLength.Min,
		lengthMax:      w.ExpressionLength.Max,
		depthMin:       w.Depth.Min,
		depthMax:       w.Depth.Max,
		kindWeights:    cloneKindWeights(w.KindWeights),
		ranges:         w.Ranges,
		actionWeights:  w.ActionWeights.Clone(),
		actionTexts:    w.ActionTexts.Clone(),
		symbolWeights:  cloneSymbolWeights(w.SymbolWeights),
		symbolsDensity: w.SymbolsDensity,
		logLevel:       w.LogLevel,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// MarshalJSON implements json.Marshaler for Config.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

// UnmarshalJSON implements json.Unmarshaler for Config, validating the
// decoded configuration as a whole before accepting it.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w configWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Config", Data: data, Reason: err.Error()}
	}
	return c.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler for Config.
func (c *Config) MarshalYAML() (any, error) {
	return c.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Config with the same
// whole-configuration validation as UnmarshalJSON.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var w configWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Config", Data: []byte(node.Value), Reason: err.Error()}
	}
	return c.fromWire(w)
}
