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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"action", &ParseError{Type: "Action", Value: "mod"}, "eqgen: invalid Action value: mod"},
		{"family", &ParseError{Type: "Family", Value: "qubic"}, "eqgen: invalid Family value: qubic"},
		{"empty value", &ParseError{Type: "Kind", Value: ""}, "eqgen: invalid Kind value: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{"positive", &MarshalError{Type: "Action", Value: 99}, "eqgen: cannot marshal invalid Action value: 99"},
		{"negative", &MarshalError{Type: "Family", Value: -1}, "eqgen: cannot marshal invalid Family value: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	err := &UnmarshalError{Type: "Kind", Data: []byte("{"), Reason: "unexpected end of JSON input"}
	want := "eqgen: cannot unmarshal Kind: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("UnmarshalError.Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"field and value",
			&ValidationError{Type: "Config", Field: "SymbolsDensity", Reason: "must be in [0,1]", Value: 2.5},
			"eqgen: invalid Config.SymbolsDensity: must be in [0,1] (value: 2.5)",
		},
		{
			"no field",
			&ValidationError{Type: "Outcome", Reason: "error kind set on positive outcome", Value: nil},
			"eqgen: invalid Outcome: error kind set on positive outcome",
		},
		{
			"field without value",
			&ValidationError{Type: "IntRange", Field: "Min", Reason: "min exceeds max"},
			"eqgen: invalid IntRange.Min: min exceeds max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
