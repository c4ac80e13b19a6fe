package tailio_test

import (
	"errors"
	"testing"

	"github.com/JackKCWong/tailio"
	. "github.com/onsi/gomega"
)

func str(s string) *string {
	return &s
}

func TestNewConfig(t *testing.T) {
	g := NewGomegaWithT(t)

	cfg, err := tailio.NewConfig([]string{"a", "b"}, nil, nil, true)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(cfg.Files).Should(Equal([]string{"a", "b"}))
	g.Expect(cfg.Lines).Should(Equal(tailio.Count(-10)))
	g.Expect(cfg.Bytes).Should(BeNil())
	g.Expect(cfg.Quiet).Should(BeTrue())

	cfg, err = tailio.NewConfig([]string{"a"}, str("+0"), str("+10"), false)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(cfg.Lines).Should(Equal(tailio.FromStart()))
	g.Expect(*cfg.Bytes).Should(Equal(tailio.Count(10)))
}

func TestNewConfigErrors(t *testing.T) {
	g := NewGomegaWithT(t)

	_, err := tailio.NewConfig(nil, nil, nil, false)
	g.Expect(err).Should(MatchError(tailio.ErrNoFiles))

	_, err = tailio.NewConfig([]string{"a"}, str("foo"), nil, false)
	g.Expect(err).Should(MatchError("illegal line count -- foo"))
	g.Expect(errors.Is(err, tailio.ErrIllegalCount)).Should(BeTrue())

	_, err = tailio.NewConfig([]string{"a"}, nil, str("3.14"), false)
	g.Expect(err).Should(MatchError("illegal byte count -- 3.14"))
}

func TestNewConfigEmptyValues(t *testing.T) {
	g := NewGomegaWithT(t)

	_, err := tailio.NewConfig([]string{"a"}, str(""), nil, false)
	g.Expect(err).Should(MatchError("illegal line count -- "))
	g.Expect(errors.Is(err, tailio.ErrIllegalCount)).Should(BeTrue())

	_, err = tailio.NewConfig([]string{"a"}, nil, str(""), false)
	g.Expect(err).Should(MatchError("illegal byte count -- "))
	g.Expect(errors.Is(err, tailio.ErrIllegalCount)).Should(BeTrue())
}
