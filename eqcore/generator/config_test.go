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

package generator

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"dirpx.dev/eqgen/eqcore/model/equation"
	"dirpx.dev/eqgen/eqcore/model/operation"
	"dirpx.dev/eqgen/eqcore/model/value"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if got := cfg.Family(); got != equation.FamilyLinear {
		t.Errorf("Family() = %v, want linear", got)
	}
	if min, max := cfg.ExpressionLength(); min != 1 || max != 5 {
		t.Errorf("ExpressionLength() = (%d, %d), want (1, 5)", min, max)
	}
	if min, max := cfg.ComplicationDepth(); min != 2 || max != 5 {
		t.Errorf("ComplicationDepth() = (%d, %d), want (2, 5)", min, max)
	}
	if got := cfg.SymbolsDensity(); got != 0.3 {
		t.Errorf("SymbolsDensity() = %v, want 0.3", got)
	}
	if got := cfg.LogLevel(); got != 1 {
		t.Errorf("LogLevel() = %d, want 1", got)
	}
	if got := cfg.Symbols(); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("Symbols() = %v, want [x y]", got)
	}
}

func TestConfigSetBounds(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		wantErr bool
	}{
		{"single point", 3, 3, false},
		{"ordered pair", 1, 10, false},
		{"upper limit", 1, 100, false},
		{"inverted", 5, 2, true},
		{"zero min", 0, 5, true},
		{"negative min", -1, 5, true},
		{"above limit", 1, 101, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			lerr := cfg.SetExpressionLength(tt.min, tt.max)
			derr := cfg.SetComplicationDepth(tt.min, tt.max)
			if (lerr != nil) != tt.wantErr {
				t.Errorf("SetExpressionLength(%d, %d) error = %v, wantErr %v", tt.min, tt.max, lerr, tt.wantErr)
			}
			if (derr != nil) != tt.wantErr {
				t.Errorf("SetComplicationDepth(%d, %d) error = %v, wantErr %v", tt.min, tt.max, derr, tt.wantErr)
			}
			if tt.wantErr {
				// Rejected values leave the prior configuration in place.
				if min, max := cfg.ExpressionLength(); min != 1 || max != 5 {
					t.Errorf("rejected set mutated length bounds to (%d, %d)", min, max)
				}
			} else {
				if min, max := cfg.ExpressionLength(); min != tt.min || max != tt.max {
					t.Errorf("ExpressionLength() = (%d, %d), want (%d, %d)", min, max, tt.min, tt.max)
				}
			}
		})
	}
}

func TestConfigSetKindWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights map[value.Kind]float64
		wantErr bool
	}{
		{"integer only", map[value.Kind]float64{value.KindInteger: 1.0}, false},
		{"all kinds", map[value.Kind]float64{value.KindInteger: 0.5, value.KindFloat: 0.3, value.KindFraction: 0.2}, false},
		{"zero weight allowed alongside positive", map[value.Kind]float64{value.KindInteger: 0.0, value.KindFloat: 1.0}, false},
		{"empty", map[value.Kind]float64{}, true},
		{"nil", nil, true},
		{"all zero", map[value.Kind]float64{value.KindInteger: 0.0}, true},
		{"negative weight", map[value.Kind]float64{value.KindInteger: -0.1}, true},
		{"weight above one", map[value.Kind]float64{value.KindInteger: 1.5}, true},
		{"invalid kind key", map[value.Kind]float64{value.Kind(99): 1.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := cfg.SetKindWeights(tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetKindWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got := cfg.KindWeights(); len(got) != 3 {
					t.Errorf("rejected set mutated kind weights: %v", got)
				}
			}
		})
	}
}

func TestConfigSetKindWeightsCopies(t *testing.T) {
	cfg := NewConfig()
	in := map[value.Kind]float64{value.KindInteger: 1.0}
	if err := cfg.SetKindWeights(in); err != nil {
		t.Fatalf("SetKindWeights() error = %v", err)
	}
	in[value.KindInteger] = -5.0
	if got := cfg.KindWeights()[value.KindInteger]; got != 1.0 {
		t.Errorf("caller mutation leaked into config: weight = %v", got)
	}
	out := cfg.KindWeights()
	out[value.KindInteger] = -5.0
	if got := cfg.KindWeights()[value.KindInteger]; got != 1.0 {
		t.Errorf("getter returned a live reference: weight = %v", got)
	}
}

func TestConfigSetRanges(t *testing.T) {
	sane := func(mutate func(*value.Ranges)) value.Ranges {
		r := value.DefaultRanges()
		mutate(&r)
		return r
	}
	tests := []struct {
		name    string
		ranges  value.Ranges
		wantErr bool
	}{
		{"defaults", value.DefaultRanges(), false},
		{"negative bounds", sane(func(r *value.Ranges) { r.Integer = value.IntRange{Min: -50, Max: -1} }), false},
		{"inverted integer", sane(func(r *value.Ranges) { r.Integer = value.IntRange{Min: 10, Max: 1} }), true},
		{"inverted float", sane(func(r *value.Ranges) { r.Float = value.FloatRange{Min: 2.0, Max: 1.0} }), true},
		{"zero-only integer", sane(func(r *value.Ranges) { r.Integer = value.IntRange{Min: 0, Max: 0} }), true},
		{"zero-only float", sane(func(r *value.Ranges) { r.Float = value.FloatRange{Min: 0, Max: 0} }), true},
		{"float range rounding to zero", sane(func(r *value.Ranges) {
			r.Float = value.FloatRange{Min: -1e-6, Max: 1e-6}
		}), true},
		{"zero-only fraction numerator", sane(func(r *value.Ranges) {
			r.Fraction.Numerator = value.IntRange{Min: 0, Max: 0}
		}), true},
		{"zero-only fraction denominator", sane(func(r *value.Ranges) {
			r.Fraction.Denominator = value.IntRange{Min: 0, Max: 0}
		}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := cfg.SetRanges(tt.ranges)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetRanges() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && cfg.Ranges() != value.DefaultRanges() {
				t.Errorf("rejected set mutated ranges: %v", cfg.Ranges())
			}
		})
	}
}

func TestConfigSetActionTables(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetActionWeights(operation.Weights{operation.ActionAdd: 1.0}); err != nil {
		t.Fatalf("SetActionWeights() error = %v", err)
	}
	if err := cfg.SetActionWeights(operation.Weights{}); err == nil {
		t.Error("SetActionWeights(empty) must fail")
	}
	if err := cfg.SetActionWeights(operation.Weights{operation.Action(99): 1.0}); err == nil {
		t.Error("SetActionWeights(invalid key) must fail")
	}
	if got := cfg.ActionWeights(); len(got) != 1 {
		t.Errorf("rejected sets mutated action weights: %v", got)
	}

	if err := cfg.SetActionTexts(operation.Texts{operation.ActionAdd: {"plus", "+"}}); err != nil {
		t.Fatalf("SetActionTexts() error = %v", err)
	}
	if err := cfg.SetActionTexts(operation.Texts{operation.ActionAdd: {}}); err == nil {
		t.Error("SetActionTexts(no renderings) must fail")
	}
}

func TestConfigSetSymbolWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]float64
		wantErr bool
	}{
		{"single symbol", map[string]float64{"x": 1.0}, false},
		{"multi symbol", map[string]float64{"x": 0.5, "y": 0.3, "z": 0.2}, false},
		{"empty", map[string]float64{}, true},
		{"empty name", map[string]float64{"": 1.0}, true},
		{"all zero", map[string]float64{"x": 0.0}, true},
		{"negative", map[string]float64{"x": -1.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := cfg.SetSymbolWeights(tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetSymbolWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSetSymbolsDensity(t *testing.T) {
	cfg := NewConfig()
	for _, valid := range []float64{0.0, 0.5, 1.0} {
		if err := cfg.SetSymbolsDensity(valid); err != nil {
			t.Errorf("SetSymbolsDensity(%v) error = %v", valid, err)
		}
	}
	for _, invalid := range []float64{-0.1, 1.1, 100} {
		if err := cfg.SetSymbolsDensity(invalid); err == nil {
			t.Errorf("SetSymbolsDensity(%v) must fail", invalid)
		}
	}
	if got := cfg.SymbolsDensity(); got != 1.0 {
		t.Errorf("rejected set mutated density: %v", got)
	}
}

func TestConfigSetLogLevel(t *testing.T) {
	cfg := NewConfig()
	for level := 0; level <= 5; level++ {
		if err := cfg.SetLogLevel(level); err != nil {
			t.Errorf("SetLogLevel(%d) error = %v", level, err)
		}
	}
	for _, invalid := range []int{-1, 6, 100} {
		if err := cfg.SetLogLevel(invalid); err == nil {
			t.Errorf("SetLogLevel(%d) must fail", invalid)
		}
	}
}

func TestConfigClone(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetSymbolWeights(map[string]float64{"a": 1.0}); err != nil {
		t.Fatalf("SetSymbolWeights() error = %v", err)
	}
	clone := cfg.Clone()
	if err := clone.SetSymbolWeights(map[string]float64{"b": 1.0}); err != nil {
		t.Fatalf("SetSymbolWeights() on clone error = %v", err)
	}
	if got := cfg.Symbols(); len(got) != 1 || got[0] != "a" {
		t.Errorf("clone mutation leaked into original: %v", got)
	}
	if diff := cmp.Diff(cfg.wire(), cfg.Clone().wire()); diff != "" {
		t.Errorf("Clone() mismatch (-orig +clone):\n%s", diff)
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetFamily(equation.FamilyCubic); err != nil {
		t.Fatalf("SetFamily() error = %v", err)
	}
	if err := cfg.SetExpressionLength(2, 4); err != nil {
		t.Fatalf("SetExpressionLength() error = %v", err)
	}
	if err := cfg.SetSymbolsDensity(0.7); err != nil {
		t.Fatalf("SetSymbolsDensity() error = %v", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back Config
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(cfg.wire(), back.wire()); diff != "" {
		t.Errorf("round trip mismatch (-sent +got):\n%s", diff)
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetFamily(equation.FamilyQuadratic); err != nil {
		t.Fatalf("SetFamily() error = %v", err)
	}
	if err := cfg.SetActionTexts(operation.Texts{
		operation.ActionAdd: {"plus"},
		operation.ActionSub: {"minus", "less"},
	}); err != nil {
		t.Fatalf("SetActionTexts() error = %v", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(cfg.wire(), back.wire()); diff != "" {
		t.Errorf("round trip mismatch (-sent +got):\n%s", diff)
	}
}

func TestConfigUnmarshalRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"inverted length", `{"family":"linear","expression_length":{"min":5,"max":1}}`},
		{"unknown family", `{"family":"quartic"}`},
		{"zero-only integer range", `{"family":"linear","ranges":{"integer":{"min":0,"max":0},"float":{"min":-10,"max":10},"fraction":{"numerator":{"min":1,"max":9},"denominator":{"min":1,"max":9}}}}`},
		{"density out of range", `{"family":"linear","symbols_density":1.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if err := json.Unmarshal([]byte(tt.doc), &cfg); err == nil {
				t.Errorf("Unmarshal(%s) must fail", tt.doc)
			}
		})
	}
}
