package exception_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jmgilman/go/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewReport(t *testing.T) {
	ex := exception.Capture(BaseFailure{Message: "lost connection"})

	r := exception.NewReport(ex)

	assert.Equal(t, exception.KindUnhandledFatal, r.Kind)
	assert.False(t, r.Empty)
	assert.Equal(t, ex.ID().String(), r.ID)
	assert.Equal(t, "exception_test.BaseFailure", r.Type)
	assert.Equal(t, "lost connection", r.Message)
	assert.Equal(t, ex.CapturedAt(), r.CapturedAt)
	assert.Equal(t, string(ex.Stack()), r.Stack)
	assert.True(t, r.Exception.Same(ex))
}

func TestNewReport_Empty(t *testing.T) {
	r := exception.NewReport(exception.Exception{})

	assert.True(t, r.Empty)
	assert.Empty(t, r.ID)
	assert.Empty(t, r.Type)
	assert.Equal(t, "terminate called without an active exception\n", r.String())
}

func TestReport_JSON(t *testing.T) {
	r := exception.NewReport(exception.Capture(TypeA{A: 1}))

	data, err := r.JSON()
	require.NoError(t, err)

	var decoded exception.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.False(t, decoded.CapturedAt.IsZero())

	diff := cmp.Diff(r, &decoded, cmpopts.IgnoreFields(exception.Report{}, "Exception"))
	assert.Empty(t, diff)
	assert.True(t, decoded.Exception.IsEmpty(), "the handle itself is never serialized")
}

func TestReport_JSON_Empty(t *testing.T) {
	data, err := exception.NewReport(exception.Exception{}).JSON()
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, true, fields["empty"])
	assert.Equal(t, "UNHANDLED_FATAL", fields["kind"])
	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "type")
	assert.NotContains(t, fields, "captured_at")
}

func TestReport_YAML(t *testing.T) {
	r := exception.NewReport(exception.Capture("disk full"))

	data, err := r.YAML()
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &fields))
	assert.Equal(t, r.ID, fields["id"])
	assert.Equal(t, "UNHANDLED_FATAL", fields["kind"])
	assert.Equal(t, "string", fields["type"])
	assert.Equal(t, "disk full", fields["message"])
	assert.Contains(t, fields, "stack")
	assert.Contains(t, fields, "captured_at")
}

func TestReport_YAML_Empty(t *testing.T) {
	data, err := exception.NewReport(exception.Exception{}).YAML()
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &fields))
	assert.Equal(t, true, fields["empty"])
	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "captured_at")
}

func TestReport_String(t *testing.T) {
	ex := exception.Capture(&DerivedFailure{Code: 2, BaseFailure: BaseFailure{Message: "bad input"}})

	out := exception.NewReport(ex).String()

	assert.Contains(t, out, "terminate called after an unhandled exception of type '*exception_test.DerivedFailure'\n")
	assert.Contains(t, out, "  what():  bad input\n")
	assert.Contains(t, out, "  id:      "+ex.ID().String()+"\n")
	assert.Contains(t, out, "goroutine")
}
