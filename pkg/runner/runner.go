/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/macaroni-os/simple-ut/pkg/assert"
	"github.com/macaroni-os/simple-ut/pkg/logger"
	"github.com/macaroni-os/simple-ut/pkg/registry"

	"github.com/pkg/errors"
)

const UnknownFailureMessage = "Unknown exception"

type Result struct {
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	failure *assert.AssertionFailure
}

type Report struct {
	Results  []Result `json:"results" yaml:"results"`
	Failures int      `json:"failures" yaml:"failures"`
}

func (r *Report) Total() int {
	return len(r.Results)
}

type Runner struct {
	Registry *registry.Registry
	Logger   *logger.SimpleUtLogger
}

type Option func(r *Runner)

func WithLogger(l *logger.SimpleUtLogger) Option {
	return func(r *Runner) {
		r.Logger = l
	}
}

func NewRunner(reg *registry.Registry, opts ...Option) *Runner {
	ans := &Runner{
		Registry: reg,
	}
	for _, o := range opts {
		o(ans)
	}
	if ans.Logger == nil {
		ans.Logger = logger.GetDefaultLogger()
	}
	return ans
}

// RunAll executes every registered test in registration order, writes
// the results to w (os.Stdout when nil) and returns the number of
// failed tests.
func (r *Runner) RunAll(w io.Writer) int {
	report, err := r.Run(w)
	if err != nil {
		r.Logger.Warning(err.Error())
	}
	return report.Failures
}

// Run is RunAll returning the complete report. The returned error is
// the first write error on w; the tests are executed anyway.
func (r *Runner) Run(w io.Writer) (*Report, error) {
	if w == nil {
		w = os.Stdout
	}

	sink := &sinkWriter{w: w}
	entries := r.Registry.All()
	report := &Report{
		Results: make([]Result, 0, len(entries)),
	}

	for _, e := range entries {
		sink.printf("Running test: %s... ", e.Name)

		res := r.runTest(e)
		if res.Passed {
			sink.printf("PASS\n")
		} else {
			sink.printf("FAIL: %s\n", res.Message)
			report.Failures++
		}
		report.Results = append(report.Results, res)

		// Log only after the result line is written: the logger may
		// share the sink.
		if res.Passed {
			r.Logger.Debug(fmt.Sprintf(":white_check_mark:%s passed.", e.Name))
		} else {
			r.Logger.Debug(fmt.Sprintf(":x:%s failed: %s", e.Name, res.Message))
			if res.failure != nil && r.Logger.DebugEnabled() {
				if d := res.failure.Diff(); d != "" {
					r.Logger.DebugC(fmt.Sprintf("%s:%d: diff (-expected +actual):\n%s",
						res.failure.File, res.failure.Line, d))
				}
			}
		}
	}

	sink.printf("Total tests run: %d\n", len(entries))
	sink.printf("Total failures: %d\n", report.Failures)

	if sink.err != nil {
		return report, errors.Wrap(sink.err, "error on write test report")
	}
	return report, nil
}

// runTest executes the body on a dedicated goroutine and waits for it,
// so a runtime.Goexit doesn't stop the whole run.
func (r *Runner) runTest(e registry.TestEntry) Result {
	done := make(chan Result, 1)

	go func() {
		ans := Result{Name: e.Name}
		completed := false

		defer func() {
			rec := recover()
			switch {
			case completed:
				ans.Passed = true
			case rec == nil:
				// runtime.Goexit or panic(nil) on older runtimes.
				ans.Message = UnknownFailureMessage
			default:
				ans.failure, _ = assert.IsAssertionFailure(rec)
				ans.Message = failureMessage(rec)
			}
			done <- ans
		}()

		e.Body()
		completed = true
	}()

	return <-done
}

func failureMessage(rec interface{}) string {
	if f, ok := assert.IsAssertionFailure(rec); ok {
		return f.Error()
	}

	switch v := rec.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return UnknownFailureMessage
	}
}

type sinkWriter struct {
	w   io.Writer
	err error
}

func (s *sinkWriter) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
