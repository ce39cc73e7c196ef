package domain

import "fmt"

// Severity grades a validation issue. Errors block diagram generation,
// warnings ride along with the result.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding. Line and Column are 1-based and
// zero when the finding has no source position.
type Issue struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}

// Errorf builds an error-severity issue.
func Errorf(format string, args ...any) Issue {
	return Issue{Message: fmt.Sprintf(format, args...), Severity: SeverityError}
}

// Warnf builds a warning-severity issue.
func Warnf(format string, args ...any) Issue {
	return Issue{Message: fmt.Sprintf(format, args...), Severity: SeverityWarning}
}

// Report aggregates the issues of one validation pass. Valid is false
// exactly when at least one issue has error severity.
type Report struct {
	Valid  bool    `json:"isValid"`
	Issues []Issue `json:"issues"`
}

// NewReport derives the Valid flag from the given issues.
func NewReport(issues []Issue) Report {
	r := Report{Valid: true, Issues: issues}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			r.Valid = false
			break
		}
	}
	return r
}

// Errors returns only the error-severity issues.
func (r Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns only the warning-severity issues.
func (r Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r Report) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}
