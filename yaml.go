package datatask

import (
	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML document and constructs a data task from it. The
// document is decoded into the same generic tree FromValue expects, so
// validation behaves identically to the JSON path.
func FromYAML(text string) (DataTask, error) {
	var decoded any
	if err := yaml.Unmarshal([]byte(text), &decoded); err != nil {
		return DataTask{}, WrapSyntaxError("failed to decode data task document", err)
	}
	return FromValue(decoded)
}

// ToYAML encodes the stored structure as YAML.
func (t DataTask) ToYAML() (string, error) {
	bytes, err := yaml.Marshal(t.value)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
