/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package assert_test

import (
	"errors"
	"strings"

	"github.com/macaroni-os/simple-ut/pkg/assert"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func catch(f func()) (rec interface{}) {
	defer func() {
		rec = recover()
	}()
	f()
	return nil
}

func catchFailure(f func()) *assert.AssertionFailure {
	rec := catch(f)
	Expect(rec).NotTo(BeNil())
	failure, ok := assert.IsAssertionFailure(rec)
	Expect(ok).To(BeTrue())
	return failure
}

func double(v int) int { return v * 2 }

func value(f func()) int {
	f()
	return 1
}

func expectLength(s string, n int) {
	assert.Equal(n, len(s))
}

var _ = Describe("Assertions", func() {

	Context("Equal", func() {

		It("returns when the operands are equal", func() {
			Expect(catch(func() {
				assert.Equal(4, double(2))
				assert.Equal("a", strings.ToLower("A"))
			})).To(BeNil())
		})

		It("fails with the literal expressions", func() {
			failure := catchFailure(func() {
				assert.Equal(1, 2)
			})

			Expect(failure.File).To(Equal("assert_test.go"))
			Expect(failure.Line).To(BeNumerically(">", 0))
			Expect(failure.Op).To(Equal("=="))
			Expect(failure.Expected).To(Equal("1"))
			Expect(failure.Actual).To(Equal("2"))
			Expect(failure.Error()).To(HaveSuffix(": expected 1==2"))
			Expect(failure.Error()).To(HavePrefix("assert_test.go:"))
		})

		It("keeps the expressions as written", func() {
			x := 3
			failure := catchFailure(func() {
				assert.Equal(x+1, double(x))
			})

			Expect(failure.Error()).To(HaveSuffix(": expected x+1==double(x)"))
		})

		It("handles calls split on many lines", func() {
			failure := catchFailure(func() {
				assert.Equal(
					"mark",
					strings.ToUpper("mark"),
				)
			})

			Expect(failure.Error()).To(HaveSuffix(`: expected "mark"==strings.ToUpper("mark")`))
		})

		It("handles explicit instantiation", func() {
			failure := catchFailure(func() {
				assert.Equal[int64](10, 11)
			})

			Expect(failure.Error()).To(HaveSuffix(": expected 10==11"))
		})

		It("evaluates every operand once", func() {
			calls := 0
			next := func() int {
				calls++
				return calls
			}

			catch(func() {
				assert.Equal(next(), next())
			})
			Expect(calls).To(Equal(2))
		})

		It("aborts the remaining body", func() {
			reached := false
			catch(func() {
				assert.Equal(true, false)
				reached = true
			})
			Expect(reached).To(BeFalse())
		})

		It("reports the position of a nested helper", func() {
			failure := catchFailure(func() {
				expectLength("abc", 2)
			})

			Expect(failure.Error()).To(HaveSuffix(": expected n==len(s)"))
		})
	})

	Context("Calls sharing a line", func() {

		It("renders the operand values", func() {
			failure := catchFailure(func() {
				assert.Equal(1, value(func() { assert.Equal("a", strings.ToUpper("a")) }))
			})

			Expect(failure.Expected).To(Equal(`"a"`))
			Expect(failure.Actual).To(Equal(`"A"`))
			Expect(failure.Error()).To(HaveSuffix(`: expected "a"=="A"`))
		})

		It("uses the single-line call inside a multi-line one", func() {
			failure := catchFailure(func() {
				assert.Equal(
					1,
					value(func() { assert.Equal("b", strings.ToUpper("b")) }),
				)
			})

			Expect(failure.Error()).To(HaveSuffix(`: expected "b"==strings.ToUpper("b")`))
		})
	})

	Context("Diff", func() {

		It("describes the operands of a failed Equal", func() {
			failure := catchFailure(func() {
				assert.Equal("mark", "devkit")
			})

			Expect(failure.Diff()).To(ContainSubstring(`"mark"`))
			Expect(failure.Diff()).To(ContainSubstring(`"devkit"`))
		})

		It("is empty for NotEqual", func() {
			failure := catchFailure(func() {
				assert.NotEqual(1, 1)
			})

			Expect(failure.Diff()).To(BeEmpty())
		})
	})

	Context("NotEqual", func() {

		It("returns when the operands differ", func() {
			Expect(catch(func() {
				assert.NotEqual(1, 2)
			})).To(BeNil())
		})

		It("fails joining the expressions with !=", func() {
			err := errors.New("boom")
			failure := catchFailure(func() {
				assert.NotEqual(err, err)
			})

			Expect(failure.Op).To(Equal("!="))
			Expect(failure.Error()).To(HaveSuffix(": expected err!=err"))
		})
	})

	Context("AssertionFailure", func() {

		It("formats the message", func() {
			f := &assert.AssertionFailure{
				File:     "sum_test.go",
				Line:     12,
				Expected: "4",
				Actual:   "sum(2, 2)",
				Op:       assert.OpEqual,
			}
			Expect(f.Error()).To(Equal("sum_test.go:12: expected 4==sum(2, 2)"))

			var err error = f
			Expect(err.Error()).To(Equal(f.Error()))
		})

		It("isn't matched by other panic values", func() {
			_, ok := assert.IsAssertionFailure("boom")
			Expect(ok).To(BeFalse())
		})
	})
})
