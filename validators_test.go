package datatask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ResourcesValidator(t *testing.T) {
	t.Run("Should fail when resources is not a dictionary", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"resources": []any{},
			"outputs":   map[string]any{"xyz.txt": []any{}},
		})
		require.Error(t, err)
		requireTaskError(t, err, KindType,
			"resources attribute value must be a dictionary that maps "+
				"resource name strings to file path or URI strings")
	})
	t.Run("Should fail when a resource entry value is not a string", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"resources": map[string]any{"abc": 123},
			"outputs":   map[string]any{"xyz.txt": []any{}},
		})
		require.Error(t, err)
		requireTaskError(t, err, KindType, "each resource entry value must be a path or URI string")
	})
	t.Run("Should accept an absent resources attribute", func(t *testing.T) {
		_, err := FromValue(map[string]any{"outputs": map[string]any{"xyz.txt": []any{}}})
		assert.NoError(t, err)
	})
}

func Test_InputsValidator(t *testing.T) {
	outputs := map[string]any{"xyz.txt": []any{}}

	t.Run("Should fail when inputs is not a dictionary", func(t *testing.T) {
		_, err := FromValue(map[string]any{"inputs": []any{}, "outputs": outputs})
		require.Error(t, err)
		requireTaskError(t, err, KindType,
			"inputs attribute must be a dictionary mapping resource names, "+
				"paths, and/or URIs to schemas")
	})
	t.Run("Should fail with a type error when an input key is not a string", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"inputs":  map[any]any{123: []any{}},
			"outputs": outputs,
		})
		require.Error(t, err)
		requireTaskError(t, err, KindType,
			"each specified input must be a string corresponding to "+
				"a defined resource name, a valid path, or a valid URI")
	})
	t.Run("Should fail when an input schema is neither null nor a list", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"inputs":  map[string]any{"abc.txt": 123},
			"outputs": outputs,
		})
		require.Error(t, err)
		requireTaskError(t, err, KindType, "input schema must be null or a list of strings")
	})
	t.Run("Should fail when an input schema contains a non-string column", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"inputs":  map[string]any{"abc.txt": []any{123}},
			"outputs": outputs,
		})
		require.Error(t, err)
		requireTaskError(t, err, KindType, "input schema must be null or a list of strings")
	})
	t.Run("Should accept null and list-of-string schemas", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"inputs": map[string]any{
				"abc.txt": nil,
				"def.csv": []any{"a", "b", "c"},
			},
			"outputs": outputs,
		})
		assert.NoError(t, err)
	})
}

func Test_OutputsValidator(t *testing.T) {
	t.Run("Should fail when outputs is absent", func(t *testing.T) {
		_, err := FromValue(map[string]any{"inputs": map[string]any{}})
		require.Error(t, err)
		requireTaskError(t, err, KindValue, "at least one output must be specified")
	})
	t.Run("Should fail when outputs is empty", func(t *testing.T) {
		_, err := FromValue(map[string]any{"outputs": map[string]any{}})
		require.Error(t, err)
		requireTaskError(t, err, KindValue, "at least one output must be specified")
	})
	t.Run("Should fail when outputs is not a dictionary", func(t *testing.T) {
		for _, value := range []any{[]any{}, nil, 123} {
			_, err := FromValue(map[string]any{"outputs": value})
			require.Error(t, err)
			requireTaskError(t, err, KindType,
				"outputs attribute must be a dictionary mapping resource names, "+
					"paths, and/or URIs to schemas")
		}
	})
	t.Run("Should fail with a value error when an output key is not a string", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"outputs": map[any]any{123: []any{}},
		})
		require.Error(t, err)
		requireTaskError(t, err, KindValue,
			"each specified output must be a string corresponding to "+
				"a defined resource name, a valid path, or a valid URI")
	})
	t.Run("Should fail when an output schema is not a list of dictionaries", func(t *testing.T) {
		for _, schema := range []any{123, []any{1, 2, 3}} {
			_, err := FromValue(map[string]any{
				"outputs": map[string]any{"xyz.txt": schema},
			})
			require.Error(t, err)
			requireTaskError(t, err, KindType, "output schema must be a list of dictionaries")
		}
	})
	t.Run("Should accept a list of descriptor dictionaries", func(t *testing.T) {
		_, err := FromValue(map[string]any{
			"outputs": map[string]any{
				"xyz": []any{map[string]any{"abc.csv": "c"}, map[string]any{"abc.csv": "b"}},
			},
		})
		assert.NoError(t, err)
	})
}

func Test_CheckOrdering(t *testing.T) {
	t.Run("Should surface the resources error before the missing outputs error", func(t *testing.T) {
		_, err := FromValue(map[string]any{"resources": []any{}})
		require.Error(t, err)
		assert.True(t, IsTypeError(err))
	})
	t.Run("Should surface the inputs error before the missing outputs error", func(t *testing.T) {
		_, err := FromValue(map[string]any{"inputs": []any{}})
		require.Error(t, err)
		assert.True(t, IsTypeError(err))
	})
	t.Run("Should run composed validators in registration order", func(t *testing.T) {
		candidate := map[string]any{"resources": []any{}, "inputs": []any{}}
		validator := NewCompositeValidator(NewInputsValidator(candidate))
		validator.AddValidator(NewResourcesValidator(candidate))
		err := validator.Validate()
		require.Error(t, err)
		var taskErr *Error
		require.ErrorAs(t, err, &taskErr)
		assert.Contains(t, taskErr.Message, "inputs attribute")
	})
}
