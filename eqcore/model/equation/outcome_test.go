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

package equation

import (
	"encoding/json"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrorNone, ""},
		{ErrorOverflow, "overflow"},
		{ErrorDivisionByZero, "division-by-zero"},
		{ErrorUnsolvable, "unsolvable"},
		{ErrorInvalid, "invalid"},
		{ErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseErrorKind(t *testing.T) {
	tests := []struct {
		input   string
		want    ErrorKind
		wantErr bool
	}{
		{"", ErrorNone, false},
		{"none", ErrorNone, false},
		{"overflow", ErrorOverflow, false},
		{"division-by-zero", ErrorDivisionByZero, false},
		{"unsolvable", ErrorUnsolvable, false},
		{"invalid", ErrorInvalid, false},
		{"OVERFLOW", ErrorNone, true},
		{"bogus", ErrorNone, true},
	}
	for _, tt := range tests {
		got, err := ParseErrorKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseErrorKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseErrorKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutcomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		wantErr bool
	}{
		{"positive with solutions", NewOutcome([]string{"-2"}), false},
		{"positive without solutions", NewOutcome(nil), false},
		{"failed overflow", FailedOutcome(ErrorOverflow), false},
		{"failed division", FailedOutcome(ErrorDivisionByZero), false},
		{"positive with error kind", Outcome{Positive: true, Kind: ErrorOverflow}, true},
		{"negative without error kind", Outcome{Positive: false}, true},
		{"negative with solutions", Outcome{Positive: false, Kind: ErrorInvalid, Solutions: []string{"1"}}, true},
		{"invalid kind", Outcome{Positive: false, Kind: ErrorKind(9)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOutcomeJSONRoundTrip(t *testing.T) {
	for _, o := range []Outcome{
		NewOutcome([]string{"3", "2"}),
		FailedOutcome(ErrorUnsolvable),
	} {
		data, err := json.Marshal(o)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", o, err)
		}
		var got Outcome
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if !o.Equal(got) {
			t.Errorf("round trip: got %+v, want %+v", got, o)
		}
	}

	inconsistent := Outcome{Positive: true, Kind: ErrorOverflow}
	if _, err := json.Marshal(inconsistent); err == nil {
		t.Error("Marshal of flag-inconsistent Outcome should fail")
	}
}

func TestResolvePathPushFront(t *testing.T) {
	var path ResolvePath
	path.PushFront("first applied")
	path.PushFront("second applied")
	path.PushFront("third applied")

	if path.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", path.Len())
	}
	// The most recently applied step is undone first.
	if path[0] != "third applied" || path[2] != "first applied" {
		t.Errorf("order wrong: %v", path)
	}
}

func TestResolvePathClone(t *testing.T) {
	path := ResolvePath{"a", "b"}
	clone := path.Clone()
	clone[0] = "mutated"
	if path[0] != "a" {
		t.Error("Clone shares backing storage with original")
	}
	if ResolvePath(nil).Clone() != nil {
		t.Error("Clone of nil path should be nil")
	}
}

func TestSidePair(t *testing.T) {
	p := SidePair{Left: "x + 1", Right: "0"}
	if got := p.String(); got != "x + 1 = 0" {
		t.Errorf("String() = %q", got)
	}
	if p.IsZero() {
		t.Error("non-empty pair reported zero")
	}
	if !(SidePair{}).IsZero() {
		t.Error("empty pair not reported zero")
	}
	if !p.Equal(SidePair{Left: "x + 1", Right: "0"}) {
		t.Error("Equal(same) = false")
	}
	if p.Equal(SidePair{Left: "x", Right: "0"}) {
		t.Error("Equal(other) = true")
	}
}
