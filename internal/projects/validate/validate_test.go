package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonEmptyString(t *testing.T) {
	t.Run("missing value", func(t *testing.T) {
		_, msg := NonEmptyString(nil, "name")
		assert.Equal(t, "name is required", msg)
	})

	t.Run("non-string value", func(t *testing.T) {
		_, msg := NonEmptyString(float64(123), "name")
		assert.Equal(t, "name must be a string", msg)
	})

	t.Run("blank after trimming", func(t *testing.T) {
		_, msg := NonEmptyString("   ", "description")
		assert.Equal(t, "description cannot be empty", msg)
	})

	t.Run("valid value is trimmed", func(t *testing.T) {
		v, msg := NonEmptyString("  Foo  ", "name")
		assert.Empty(t, msg)
		assert.Equal(t, "Foo", v)
	})
}

func TestProjectCreate_Valid(t *testing.T) {
	input, errs := ProjectCreate(map[string]any{
		"name":        " Mobile App ",
		"description": " Redesign ",
	})
	require.Empty(t, errs)
	assert.Equal(t, "Mobile App", input.Name)
	assert.Equal(t, "Redesign", input.Description)
	assert.Equal(t, "draft", input.Status)
}

func TestProjectCreate_ExplicitStatus(t *testing.T) {
	input, errs := ProjectCreate(map[string]any{
		"name":        "A",
		"description": "B",
		"status":      "completed",
	})
	require.Empty(t, errs)
	assert.Equal(t, "completed", input.Status)
}

func TestProjectCreate_AccumulatesAllErrors(t *testing.T) {
	_, errs := ProjectCreate(map[string]any{"name": ""})
	require.Len(t, errs, 2)
	assert.Equal(t, "name cannot be empty", errs[0])
	assert.Equal(t, "description is required", errs[1])
}

func TestProjectCreate_InvalidStatus(t *testing.T) {
	_, errs := ProjectCreate(map[string]any{
		"name":        "A",
		"description": "B",
		"status":      "archived",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "status must be one of: draft, active, completed", errs[0])
}

func TestProjectCreate_NonStringStatus(t *testing.T) {
	_, errs := ProjectCreate(map[string]any{
		"name":        "A",
		"description": "B",
		"status":      float64(1),
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "status must be one of: draft, active, completed", errs[0])
}

func TestProjectUpdate_SubsetOfFields(t *testing.T) {
	input, errs := ProjectUpdate(map[string]any{"name": " Renamed "})
	require.Empty(t, errs)
	require.NotNil(t, input.Name)
	assert.Equal(t, "Renamed", *input.Name)
	assert.Nil(t, input.Description)
	assert.Nil(t, input.Status)
	assert.False(t, input.Empty())
}

func TestProjectUpdate_EmptyBodyIsNotAValidationFailure(t *testing.T) {
	input, errs := ProjectUpdate(map[string]any{})
	assert.Empty(t, errs)
	assert.True(t, input.Empty())
}

func TestProjectUpdate_CollectsErrorsPerField(t *testing.T) {
	_, errs := ProjectUpdate(map[string]any{
		"name":   "",
		"status": "paused",
	})
	require.Len(t, errs, 2)
	assert.Equal(t, "name cannot be empty", errs[0])
	assert.Equal(t, "status must be one of: draft, active, completed", errs[1])
}

func TestProjectUpdate_NullFieldIsRequiredError(t *testing.T) {
	_, errs := ProjectUpdate(map[string]any{"description": nil})
	require.Len(t, errs, 1)
	assert.Equal(t, "description is required", errs[0])
}

func TestIDParam(t *testing.T) {
	id, ok := IDParam(" 42 ")
	assert.True(t, ok)
	assert.Equal(t, "42", id)

	_, ok = IDParam("   ")
	assert.False(t, ok)

	_, ok = IDParam("")
	assert.False(t, ok)
}
