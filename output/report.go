package output

import "github.com/sagarc03/foodle"

// CheckResult is the outcome of one startup check.
type CheckResult struct {
	Name   string `json:"name" yaml:"name"`
	OK     bool   `json:"ok" yaml:"ok"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// CheckReport collects the results of the check command.
type CheckReport struct {
	Variant  foodle.Variant
	Checks   []CheckResult
	Warnings []string
}

// Add records a check result.
func (r *CheckReport) Add(name string, err error, detail string) {
	result := CheckResult{Name: name, OK: err == nil, Detail: detail}
	if err != nil {
		result.Detail = err.Error()
	}
	r.Checks = append(r.Checks, result)
}

// Warn records a warning. Warnings never fail a report.
func (r *CheckReport) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// OK reports whether every check passed.
func (r *CheckReport) OK() bool {
	for i := range r.Checks {
		if !r.Checks[i].OK {
			return false
		}
	}
	return true
}

type checkReportView struct {
	Variant  foodle.Variant `json:"variant" yaml:"variant"`
	OK       bool           `json:"ok" yaml:"ok"`
	Checks   []CheckResult  `json:"checks" yaml:"checks"`
	Warnings []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r *CheckReport) view() checkReportView {
	checks := r.Checks
	if checks == nil {
		checks = []CheckResult{}
	}
	return checkReportView{
		Variant:  r.Variant,
		OK:       r.OK(),
		Checks:   checks,
		Warnings: r.Warnings,
	}
}
