// Package sbuf_test
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package sbuf_test

import (
	"fmt"

	"github.com/kitbag/kitbag/sbuf"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	Context("construction", func() {
		It("should format per printf", func() {
			sb := sbuf.New("%s-%d", "x", 7)
			Expect(sb.String()).To(Equal("x-7"))
			Expect(sb.Len()).To(Equal(3))
			Expect(sb.Size()).To(Equal(4))
		})

		It("should leave an empty format released", func() {
			sb := sbuf.New("")
			Expect(sb.Len()).To(BeZero())
			Expect(sb.Size()).To(BeZero())
			Expect(sb.Cap()).To(BeZero())
		})

		It("should accept a zero-value Builder", func() {
			var sb sbuf.Builder
			sb.AppendString("hi")
			Expect(sb.String()).To(Equal("hi"))
			Expect(sb.Size()).To(Equal(3))
		})
	})

	Context("termination", func() {
		It("should keep exactly one trailing NUL", func() {
			sb := sbuf.New("abc")
			term := sb.Terminated()
			Expect(term).To(HaveLen(4))
			Expect(term[3]).To(Equal(byte(0)))
			Expect(sb.Bytes()).To(Equal([]byte("abc")))

			sb.AppendChar('d')
			term = sb.Terminated()
			Expect(term).To(HaveLen(5))
			Expect(term[4]).To(Equal(byte(0)))
		})

		It("should return nil views when empty", func() {
			var sb sbuf.Builder
			Expect(sb.Bytes()).To(BeNil())
			Expect(sb.Terminated()).To(BeNil())
		})
	})

	Context("append and insert", func() {
		It("should append all kinds", func() {
			sb := sbuf.New("x-7")
			sb.AppendChar('!')
			Expect(sb.String()).To(Equal("x-7!"))
			Expect(sb.Len()).To(Equal(4))

			sb.AppendString("; n=")
			sb.AppendInt(-42)
			sb.AppendChar(' ')
			sb.AppendFloat(3.5)
			Expect(sb.String()).To(Equal("x-7!; n=-42 3.500000"))
		})

		It("should insert at any content position", func() {
			sb := sbuf.New("ad")
			sb.InsertString("bc", 1)
			Expect(sb.String()).To(Equal("abcd"))

			sb.InsertChar('_', 0)
			Expect(sb.String()).To(Equal("_abcd"))

			sb.InsertInt(12, sb.Len())
			Expect(sb.String()).To(Equal("_abcd12"))

			sb.InsertFloat(0.25, 0)
			Expect(sb.String()).To(Equal("0.250000_abcd12"))
		})

		It("should insert into a fresh builder", func() {
			var sb sbuf.Builder
			sb.InsertChar('z', 0)
			Expect(sb.String()).To(Equal("z"))
			Expect(sb.Size()).To(Equal(2))
		})

		It("should not truncate wide numbers", func() {
			var sb sbuf.Builder
			sb.AppendInt(1234567890123456789)
			Expect(sb.String()).To(Equal("1234567890123456789"))

			sb.Free()
			sb.AppendFloat(-1.25e20)
			Expect(sb.String()).To(Equal("-125000000000000000000.000000"))
		})

		It("should serve as an io.Writer", func() {
			var sb sbuf.Builder
			n, err := fmt.Fprintf(&sb, "%04d", 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(4))
			Expect(sb.String()).To(Equal("0007"))
		})
	})

	Context("erase", func() {
		It("should remove single bytes", func() {
			sb := sbuf.New("abcd")
			sb.Erase(1)
			Expect(sb.String()).To(Equal("acd"))
			sb.Erase(sb.Len() - 1)
			Expect(sb.String()).To(Equal("ac"))
		})

		It("should undo a matching insert", func() {
			sb := sbuf.New("kit")
			sb.InsertChar('X', 1)
			sb.Erase(1)
			Expect(sb.String()).To(Equal("kit"))
		})

		It("should release entirely on the last byte", func() {
			sb := sbuf.New("ab")
			sb.Erase(0)
			Expect(sb.Size()).To(Equal(2))
			sb.Erase(0)
			Expect(sb.Size()).To(BeZero())
			Expect(sb.Cap()).To(BeZero())

			sb.Erase(0) // no-op on empty
			Expect(sb.Size()).To(BeZero())
		})
	})

	Context("contract violations", func() {
		It("should panic on out-of-range positions", func() {
			sb := sbuf.New("abc")
			Expect(func() { sb.InsertChar('x', 4) }).To(PanicWith(HavePrefix("sbuf: ")))
			Expect(func() { sb.InsertString("x", -1) }).To(PanicWith(HavePrefix("sbuf: ")))
			Expect(func() { sb.Erase(3) }).To(PanicWith(HavePrefix("sbuf: ")))
		})
	})

	Context("release", func() {
		It("should be idempotent and leave the builder usable", func() {
			sb := sbuf.New("data")
			sb.Free()
			sb.Free()
			Expect(sb.Size()).To(BeZero())

			sb.AppendString("again")
			Expect(sb.String()).To(Equal("again"))
		})
	})
})
