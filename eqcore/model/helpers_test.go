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

package model_test

import (
	"strings"
	"testing"

	"dirpx.dev/eqgen/eqcore/model"
	"dirpx.dev/eqgen/eqcore/model/equation"
	"dirpx.dev/eqgen/eqcore/model/value"
)

func family(f equation.Family) *equation.Family { return &f }

func TestValidateAll(t *testing.T) {
	valid := []*equation.Family{
		family(equation.FamilyLinear),
		family(equation.FamilyQuadratic),
		family(equation.FamilyGeneral),
	}
	if err := model.ValidateAll(valid); err != nil {
		t.Errorf("ValidateAll(valid) error = %v", err)
	}

	if err := model.ValidateAll([]*equation.Family{}); err != nil {
		t.Errorf("ValidateAll(empty) error = %v", err)
	}

	invalid := []*equation.Family{
		family(equation.FamilyLinear),
		family(equation.Family(99)),
		family(equation.Family(-1)),
	}
	err := model.ValidateAll(invalid)
	if err == nil {
		t.Fatal("ValidateAll(invalid) must fail")
	}
	// All failures are reported, with their positions.
	if !strings.Contains(err.Error(), "model[1]") || !strings.Contains(err.Error(), "model[2]") {
		t.Errorf("ValidateAll() error lacks positions: %v", err)
	}
	if !strings.Contains(err.Error(), "Family") {
		t.Errorf("ValidateAll() error lacks type name: %v", err)
	}
}

func TestFilterZero(t *testing.T) {
	// FamilyLinear is the Family zero value, a valid constant nonetheless.
	in := []*equation.Family{
		family(equation.FamilyCubic),
		family(equation.FamilyGeneral),
	}
	out := model.FilterZero(in)
	if len(out) != 2 {
		t.Errorf("FilterZero() kept %d of 2 non-zero models", len(out))
	}

	out = model.FilterZero([]*equation.Family{family(equation.FamilyLinear)})
	if len(out) != 0 {
		t.Errorf("FilterZero() kept zero-valued model: %v", out)
	}
	if out == nil {
		t.Error("FilterZero() must return a non-nil slice")
	}
}

func TestMustValidate(t *testing.T) {
	got := model.MustValidate(family(equation.FamilyCubic))
	if *got != equation.FamilyCubic {
		t.Errorf("MustValidate() = %v, want cubic", *got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustValidate(invalid) must panic")
		}
	}()
	model.MustValidate(family(equation.Family(99)))
}

func TestSafeString(t *testing.T) {
	k := value.KindFraction
	// Kind carries no sensitive data, so both exposure levels agree.
	if got := model.SafeString(&k, false); got != "fraction" {
		t.Errorf("SafeString(redacted) = %q, want %q", got, "fraction")
	}
	if got := model.SafeString(&k, true); got != "fraction" {
		t.Errorf("SafeString(unsafe) = %q, want %q", got, "fraction")
	}
}

func TestJSONHelpersRoundTrip(t *testing.T) {
	data, err := model.ToJSON(family(equation.FamilyQuadratic))
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `"quadratic"` {
		t.Errorf("ToJSON() = %s, want %q", data, `"quadratic"`)
	}

	var back *equation.Family
	if err := model.FromJSON(data, &back); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *back != equation.FamilyQuadratic {
		t.Errorf("FromJSON() = %v, want quadratic", *back)
	}

	if _, err := model.ToJSON(family(equation.Family(99))); err == nil {
		t.Error("ToJSON(invalid) must fail")
	}
	if err := model.FromJSON([]byte(`"quartic"`), &back); err == nil {
		t.Error("FromJSON(unknown family) must fail")
	}
}

func TestYAMLHelpersRoundTrip(t *testing.T) {
	data, err := model.ToYAML(family(equation.FamilyGeneral))
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var back *equation.Family
	if err := model.FromYAML(data, &back); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *back != equation.FamilyGeneral {
		t.Errorf("FromYAML() = %v, want general", *back)
	}
}

func TestCloneAndEqual(t *testing.T) {
	orig := family(equation.FamilyCubic)
	clone, err := model.Clone(orig)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if clone == orig {
		t.Error("Clone() returned the original pointer")
	}
	if !model.Equal(orig, clone) {
		t.Errorf("Equal(orig, clone) = false; orig %v clone %v", *orig, *clone)
	}
	if model.Equal(orig, family(equation.FamilyLinear)) {
		t.Error("Equal() must distinguish different families")
	}
}
