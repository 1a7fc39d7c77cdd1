package catalog

import "fmt"

// Reason classifies why a line or course was rejected during a load.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonSourceUnreadable    Reason = "source-unreadable"
	ReasonMalformed           Reason = "malformed"
	ReasonMissingField        Reason = "missing-field"
	ReasonDuplicateKey        Reason = "duplicate-key"
	ReasonInvalidPrerequisite Reason = "invalid-prerequisite"
)

// Diagnostic reports one rejected line or course. Rejections never abort a
// load; the caller decides how to display them.
type Diagnostic struct {
	Line    int // 1-based line in the input, 0 when the whole source failed
	Code    Reason
	Message string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return d.Message
	}
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}
