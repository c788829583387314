package exception

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report describes the exception that is ending the process.
//
// Reports are built by Terminate and handed to the configured Reporter.
// They serialize to JSON and YAML for crash collectors.
type Report struct {
	// ID is the exception's capture ID. Empty for an empty exception.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Kind is always KindUnhandledFatal.
	Kind ErrorKind `json:"kind" yaml:"kind"`

	// Empty is true when termination happened without an active exception.
	Empty bool `json:"empty" yaml:"empty"`

	// Type is the exact runtime type of the captured value.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Message is the captured value formatted with %v.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// CapturedAt is the capture time. Omitted for an empty exception.
	CapturedAt time.Time `json:"captured_at,omitzero" yaml:"captured_at,omitempty"`

	// Stack is the stack trace recorded at capture time.
	Stack string `json:"stack,omitempty" yaml:"stack,omitempty"`

	// Exception is the active exception itself.
	Exception Exception `json:"-" yaml:"-"`
}

// NewReport builds the termination report for e.
func NewReport(e Exception) *Report {
	r := &Report{
		Kind:      KindUnhandledFatal,
		Empty:     e.IsEmpty(),
		Exception: e,
	}
	if r.Empty {
		return r
	}

	r.ID = e.ID().String()
	r.Type = e.obj.stored.Type().String()
	r.Message = fmt.Sprint(e.obj.value)
	r.CapturedAt = e.obj.capturedAt
	r.Stack = string(e.obj.stack)

	return r
}

// JSON encodes the report as JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, wrapError(err, KindInternal, "failed to encode report as JSON")
	}
	return data, nil
}

// YAML encodes the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, wrapError(err, KindInternal, "failed to encode report as YAML")
	}
	return data, nil
}

// Headline returns the first line of the console rendering.
func (r *Report) Headline() string {
	if r.Empty {
		return "terminate called without an active exception"
	}
	return fmt.Sprintf("terminate called after an unhandled exception of type '%s'", r.Type)
}

// String renders the report for a console.
func (r *Report) String() string {
	var b strings.Builder

	b.WriteString(r.Headline())
	b.WriteString("\n")
	if r.Empty {
		return b.String()
	}

	fmt.Fprintf(&b, "  what():  %s\n", r.Message)
	fmt.Fprintf(&b, "  id:      %s\n", r.ID)
	if r.Stack != "" {
		b.WriteString("\n")
		b.WriteString(r.Stack)
		if !strings.HasSuffix(r.Stack, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}
