package test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/receipt-points/internal/model"
)

var _ = Describe("Money", func() {
	Context("ParseMoney", func() {
		It("accepts a two digit amount", func() {
			m, err := model.ParseMoney("6.49")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(m.String()).Should(Equal("6.49"))
		})
		It("accepts whole numbers", func() {
			m, err := model.ParseMoney("35")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(m.IsWholeDollar()).Should(BeTrue())
		})
		It("accepts zero", func() {
			m, err := model.ParseMoney("0.00")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(m.IsWholeDollar()).Should(BeTrue())
		})
		It("rejects an empty string", func() {
			_, err := model.ParseMoney("")
			Expect(err).Should(MatchError(model.ErrInvalidAmount))
		})
		It("rejects negative amounts", func() {
			_, err := model.ParseMoney("-1.00")
			Expect(err).Should(MatchError(model.ErrInvalidAmount))
		})
		It("rejects more than two fractional digits", func() {
			_, err := model.ParseMoney("1.001")
			Expect(err).Should(MatchError(model.ErrInvalidAmount))
		})
		It("rejects text", func() {
			_, err := model.ParseMoney("ten dollars")
			Expect(err).Should(MatchError(model.ErrInvalidAmount))
		})
	})
	Context("IsWholeDollar", func() {
		It("is true without cents", func() {
			Expect(mustMoney("10.00").IsWholeDollar()).Should(BeTrue())
		})
		It("is false with cents", func() {
			Expect(mustMoney("10.50").IsWholeDollar()).Should(BeFalse())
		})
	})
	Context("IsQuarterMultiple", func() {
		It("is true for exact quarter multiples", func() {
			Expect(mustMoney("10.25").IsQuarterMultiple()).Should(BeTrue())
			Expect(mustMoney("9.00").IsQuarterMultiple()).Should(BeTrue())
		})
		It("is false otherwise", func() {
			Expect(mustMoney("10.10").IsQuarterMultiple()).Should(BeFalse())
		})
	})
	Context("ScaledCeilingPoints", func() {
		factor := decimal.New(2, -1)

		It("keeps exact results as is", func() {
			Expect(mustMoney("10.00").ScaledCeilingPoints(factor)).Should(Equal(int64(2)))
		})
		It("rounds any fraction toward positive infinity", func() {
			Expect(mustMoney("1.00").ScaledCeilingPoints(factor)).Should(Equal(int64(1)))
			Expect(mustMoney("12.25").ScaledCeilingPoints(factor)).Should(Equal(int64(3)))
			Expect(mustMoney("0.01").ScaledCeilingPoints(factor)).Should(Equal(int64(1)))
		})
	})
})
