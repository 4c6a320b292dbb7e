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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one.
//
// Each model's Validate method is invoked in order. Failures are wrapped
// with the model's position in the slice and its TypeName, then aggregated
// through an rxmerr.Collector into a single combined error. If every model
// passes, ValidateAll returns nil. Empty slices are considered valid.
//
// The function always processes the entire slice even when early elements
// fail, ensuring complete error reporting for batch configuration checks.
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero reports false.
//
// The returned slice is always a fresh allocation and never shares backing
// storage with the input. If the input is empty or all models are zero, the
// result is an empty non-nil slice. FilterZero does not validate models; it
// only drops empty placeholder values, which is useful before serializing
// collections.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// On success the model is returned unchanged, allowing inline
// initialization chains. On failure the panic message includes the model's
// TypeName and the validation error. MustValidate is intended for tests and
// initialization sequences where an invalid model is a programming error,
// not a recoverable condition; production code paths SHOULD call Validate
// and handle the error instead.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("eqgen: %s failed validation: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of the model appropriate for
// the requested exposure level.
//
// When unsafe is true the full String form is returned; otherwise the
// Redacted form is used. Logging code SHOULD default to unsafe=false so
// that model values remain safe to log wholesale.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON serializes a model to JSON after validating it.
//
// Validation failures and marshal failures are both returned as errors;
// a model that does not validate is never serialized. The output is the
// compact encoding produced by encoding/json.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("eqgen: cannot serialize invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML serializes a model to YAML after validating it.
//
// Validation failures and marshal failures are both returned as errors,
// mirroring ToJSON. The output uses the default yaml.v3 encoding.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("eqgen: cannot serialize invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON deserializes JSON data into a model and validates the result.
//
// The destination is only considered populated when both decoding and
// validation succeed; callers MUST NOT use the destination value after an
// error. This enforces the boundary rule that invalid external input never
// crosses into generation logic.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("eqgen: deserialized %s is invalid: %w", (*m).TypeName(), err)
	}
	return nil
}

// FromYAML deserializes YAML data into a model and validates the result,
// with the same population guarantee as FromJSON.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return err
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("eqgen: deserialized %s is invalid: %w", (*m).TypeName(), err)
	}
	return nil
}

// Clone produces a deep copy of a model via a JSON round-trip.
//
// The copy shares no mutable state with the original. Clone is intended for
// defensive copies of configuration values at API boundaries; it is not
// optimized for hot paths.
func Clone[T Model](m T) (T, error) {
	var out T
	data, err := json.Marshal(m)
	if err != nil {
		return out, fmt.Errorf("eqgen: cannot clone %s: %w", m.TypeName(), err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("eqgen: cannot clone %s: %w", m.TypeName(), err)
	}
	return out, nil
}

// Equal reports whether two models are semantically equal.
//
// Types implementing Comparable are compared through their Equal method;
// all other types are compared by their serialized JSON forms. Marshal
// failures compare as unequal.
func Equal[T Model](a, b T) bool {
	if ca, ok := any(a).(Comparable); ok {
		return ca.Equal(b)
	}
	da, errA := json.Marshal(a)
	db, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(da) == string(db)
}
