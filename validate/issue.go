// Package validate gates lifecycle transitions of the order in progress.
//
// Each check is an independent predicate returning an Issue or nil. The
// pipelines accumulate every applicable issue instead of short-circuiting so
// the UI can present all problems at once; nothing here ever panics or
// returns a Go error.
package validate

// Severity grades an Issue. Only SeverityError blocks the transition;
// warnings and infos are presented but do not block.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one validation finding. Field names the UI input it concerns,
// when there is one.
type Issue struct {
	Field    string
	Message  string
	Severity Severity
}

// Blocking reports whether any issue in the list has error severity.
func Blocking(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
