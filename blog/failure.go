package blog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/workflow"
)

// Failure describes which step of a pipeline failed and what the provider
// reported about it.
type Failure struct {
	Step string
	// The fields below are zero when the step failed without a provider
	// status, e.g. on an empty completion or a network error.
	Provider   ai.Provider
	Category   ai.ErrorCategory
	Status     int
	RetryAfter time.Duration
}

// Diagnose extracts a Failure from an error returned by Agent.Write or
// Agent.Compose. It reports false for errors not raised by a generation step.
func Diagnose(err error) (Failure, bool) {
	var genErr *workflow.GenerationError
	if !errors.As(err, &genErr) {
		return Failure{}, false
	}

	f := Failure{Step: genErr.StepName}
	if pe, ok := ai.AsProviderError(genErr.Cause); ok {
		f.Provider = pe.Provider
		f.Category = pe.Category
		f.Status = pe.Status
		f.RetryAfter = pe.RetryAfter
	}
	return f, true
}

// String renders e.g. "title_generator failed (anthropic, transient, status 429, retry after 12s)".
func (f Failure) String() string {
	if f.Category == "" {
		return f.Step + " failed"
	}
	details := []string{string(f.Provider), string(f.Category)}
	if f.Status != 0 {
		details = append(details, fmt.Sprintf("status %d", f.Status))
	}
	if f.RetryAfter > 0 {
		details = append(details, "retry after "+f.RetryAfter.String())
	}
	return fmt.Sprintf("%s failed (%s)", f.Step, strings.Join(details, ", "))
}
