package tailio_test

import (
	"errors"
	"math"
	"testing"

	"github.com/JackKCWong/tailio"
	. "github.com/onsi/gomega"
)

func TestParseTakeSpec(t *testing.T) {
	g := NewGomegaWithT(t)

	cases := []struct {
		in   string
		want tailio.TakeSpec
	}{
		{"3", tailio.Count(-3)},
		{"-3", tailio.Count(-3)},
		{"+3", tailio.Count(3)},
		{"0", tailio.Count(0)},
		{"-0", tailio.Count(0)},
		{"+0", tailio.FromStart()},
		{"+000", tailio.FromStart()},
		{"9223372036854775807", tailio.Count(math.MinInt64 + 1)},
		{"-9223372036854775807", tailio.Count(math.MinInt64 + 1)},
		{"+9223372036854775807", tailio.Count(math.MaxInt64)},
		{"9223372036854775808", tailio.Count(math.MinInt64)},
		{"-9223372036854775808", tailio.Count(math.MinInt64)},
	}

	for _, c := range cases {
		spec, err := tailio.ParseTakeSpec(c.in)
		g.Expect(err).ShouldNot(HaveOccurred(), c.in)
		g.Expect(spec).Should(Equal(c.want), c.in)
	}
}

func TestParseTakeSpecRejects(t *testing.T) {
	g := NewGomegaWithT(t)

	for _, in := range []string{"", "+", "-", "3.14", "foo", " 3", "3 ", "++3", "+-3", "0x10", "1e3",
		"+9223372036854775808", "-9223372036854775809", "99999999999999999999"} {
		_, err := tailio.ParseTakeSpec(in)
		g.Expect(err).Should(HaveOccurred(), in)
		g.Expect(errors.Is(err, tailio.ErrIllegalCount)).Should(BeTrue(), in)

		var ce *tailio.CountError
		g.Expect(errors.As(err, &ce)).Should(BeTrue(), in)
		g.Expect(ce.Value).Should(Equal(in))
		g.Expect(err.Error()).Should(Equal("illegal count -- " + in))
	}
}

func TestTakeSpecString(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(tailio.FromStart().String()).Should(Equal("+0"))
	g.Expect(tailio.Count(5).String()).Should(Equal("+5"))
	g.Expect(tailio.Count(-5).String()).Should(Equal("-5"))
	g.Expect(tailio.Count(0).String()).Should(Equal("0"))
	g.Expect(tailio.FromStart().IsFromStart()).Should(BeTrue())
	g.Expect(tailio.Count(0).IsFromStart()).Should(BeFalse())
	g.Expect(tailio.TakeSpec{}).Should(Equal(tailio.Count(0)))
}
