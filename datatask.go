// Package datatask implements a validated, self-describing representation
// format for data tasks: descriptions of data-processing steps that declare
// named resources, input data resources with optional column schemas, and
// output data resources with required column schemas.
//
// The package is a contract layer only. It never reads, transforms, or
// writes the referenced data; it validates the description and round-trips
// it through JSON so downstream tooling can interpret it uniformly.
package datatask

import (
	"encoding/json"

	"github.com/mohae/deepcopy"
)

// -----------------------------------------------------------------------------
// DataTask
// -----------------------------------------------------------------------------

// DataTask is a validated data task document. Instances are constructed
// atomically by FromValue, FromJSON, or FromYAML and are immutable afterward:
// the backing tree is copied on construction and every accessor returns a
// fresh copy.
type DataTask struct {
	value map[string]any
}

// FromValue validates an arbitrary decoded-JSON-like value and constructs a
// data task from it. Checks run field by field, resources then inputs then
// outputs, and stop at the first violation. Unrecognized top-level keys are
// preserved untouched. A non-mapping value carries no recognized fields and
// fails at the outputs presence check.
func FromValue(value any) (DataTask, error) {
	var candidate map[string]any
	switch v := value.(type) {
	case DataTask:
		candidate = v.value
	case map[string]any:
		candidate = v
	case map[any]any:
		candidate, _ = normalizeValue(v).(map[string]any)
	}
	if candidate == nil {
		candidate = map[string]any{}
	}
	validator := NewCompositeValidator(
		NewResourcesValidator(candidate),
		NewInputsValidator(candidate),
		NewOutputsValidator(candidate),
	)
	if err := validator.Validate(); err != nil {
		return DataTask{}, err
	}
	stored, _ := normalizeValue(candidate).(map[string]any)
	return DataTask{value: stored}, nil
}

// FromJSON decodes a JSON document and constructs a data task from it.
// Malformed JSON fails with a syntax-kind error wrapping the decoder error;
// well-formed JSON is validated exactly as in FromValue.
func FromJSON(text string) (DataTask, error) {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return DataTask{}, WrapSyntaxError("failed to decode data task document", err)
	}
	return FromValue(decoded)
}

// -----------------------------------------------------------------------------
// Serialization
// -----------------------------------------------------------------------------

// ToJSON encodes the stored structure as compact JSON. The encoding is a
// faithful rendering of exactly the validated tree; nothing is dropped or
// canonicalized.
func (t DataTask) ToJSON() (string, error) {
	bytes, err := json.Marshal(t.value)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ToJSONIndent encodes the stored structure as indented JSON. Indentation is
// pass-through formatting only and never alters the semantic content.
func (t DataTask) ToJSONIndent(prefix, indent string) (string, error) {
	bytes, err := json.MarshalIndent(t.value, prefix, indent)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (t DataTask) String() string {
	bytes, err := json.Marshal(t.value)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func (t DataTask) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON decodes and fully validates the document, so the type
// composes with encoding/json without bypassing construction checks.
func (t *DataTask) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// Resources returns the resource name definitions, mapping each name to its
// file path or URI. Absent resources yield an empty map.
func (t DataTask) Resources() map[string]string {
	resources := map[string]string{}
	entries, ok := t.value["resources"].(map[string]any)
	if !ok {
		return resources
	}
	for name, uri := range entries {
		if path, ok := uri.(string); ok {
			resources[name] = path
		}
	}
	return resources
}

// Inputs returns the input entries, mapping each resource name, path, or URI
// to its column schema. A null schema stays nil so callers can tell "no
// schema asserted" from "no columns". Absent inputs yield an empty map.
func (t DataTask) Inputs() map[string][]string {
	inputs := map[string][]string{}
	entries, ok := t.value["inputs"].(map[string]any)
	if !ok {
		return inputs
	}
	for name, schema := range entries {
		inputs[name] = columnNames(schema)
	}
	return inputs
}

// Outputs returns the output entries, mapping each resource name, path, or
// URI to its list of column descriptors. Always populated on a valid
// instance.
func (t DataTask) Outputs() map[string][]map[string]any {
	outputs := map[string][]map[string]any{}
	entries, ok := t.value["outputs"].(map[string]any)
	if !ok {
		return outputs
	}
	for name, schema := range entries {
		outputs[name] = columnDescriptors(schema)
	}
	return outputs
}

// AsMap returns a deep copy of the whole stored tree, including any
// unrecognized top-level keys that passed through validation.
func (t DataTask) AsMap() map[string]any {
	if t.value == nil {
		return map[string]any{}
	}
	return deepCopyMap(t.value)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func columnNames(schema any) []string {
	switch columns := schema.(type) {
	case []string:
		return append([]string(nil), columns...)
	case []any:
		names := make([]string, 0, len(columns))
		for _, column := range columns {
			if name, ok := column.(string); ok {
				names = append(names, name)
			}
		}
		return names
	default:
		return nil
	}
}

func columnDescriptors(schema any) []map[string]any {
	switch descriptors := schema.(type) {
	case []map[string]any:
		out := make([]map[string]any, 0, len(descriptors))
		for _, descriptor := range descriptors {
			out = append(out, deepCopyMap(descriptor))
		}
		return out
	case []any:
		out := make([]map[string]any, 0, len(descriptors))
		for _, descriptor := range descriptors {
			if mapping, ok := descriptor.(map[string]any); ok {
				out = append(out, deepCopyMap(mapping))
			}
		}
		return out
	default:
		return nil
	}
}

// deepCopyMap returns a deep copy of the provided map[string]any.
func deepCopyMap(m map[string]any) map[string]any {
	copied, ok := deepcopy.Copy(m).(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return copied
}

// normalizeValue deep-copies the container shapes this package accepts,
// rewriting string-keyed map[any]any mappings (yaml.v2-style decoders,
// hand-built candidates) into map[string]any so the stored tree always
// serializes with encoding/json. Mappings with non-string keys are left
// untouched; validation rejects them wherever key types matter.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = normalizeValue(entry)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			name, ok := key.(string)
			if !ok {
				return v
			}
			out[name] = normalizeValue(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, element := range v {
			out[i] = normalizeValue(element)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, mapping := range v {
			out[i], _ = normalizeValue(mapping).(map[string]any)
		}
		return out
	default:
		return v
	}
}
