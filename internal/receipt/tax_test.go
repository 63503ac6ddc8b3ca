package receipt_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/zombor/salestax/internal/receipt"
)

var _ = Describe("ComputeTaxedPrice", func() {
	DescribeTable("pricing a unit",
		func(price string, exempt, imported bool, expected string) {
			taxed := receipt.ComputeTaxedPrice(decimal.RequireFromString(price), exempt, imported)
			Expect(taxed.StringFixed(2)).To(Equal(expected))
		},
		Entry("basic tax rounds 1.249 up to 1.25", "12.49", false, false, "13.74"),
		Entry("basic tax on a music CD", "14.99", false, false, "16.49"),
		Entry("combined surcharge rounds 4.1985 up to 4.20", "27.99", false, true, "32.19"),
		Entry("exempt and imported pays import duty only", "10.00", true, true, "10.50"),
		Entry("exempt and imported rounds 0.5625 up to 0.60", "11.25", true, true, "11.85"),
		Entry("imported perfume", "47.50", false, true, "54.65"),
		Entry("exempt local goods are untaxed", "0.85", true, false, "0.85"),
		Entry("free item", "0", false, true, "0.00"),
		Entry("0.131 of tax rounds to 0.15", "1.31", false, false, "1.46"),
	)

	It("should round the combined tax once instead of each surcharge", func() {
		// 0.10*1.01 rounds to 0.15 and 0.05*1.01 to 0.10 separately; combined 0.1515 rounds to 0.20
		taxed := receipt.ComputeTaxedPrice(decimal.RequireFromString("1.01"), false, true)
		Expect(taxed.StringFixed(2)).To(Equal("1.21"))
	})

	It("should never tax exempt local goods", func() {
		for _, p := range []string{"0", "0.01", "3.33", "99.99", "1234.56"} {
			price := decimal.RequireFromString(p)
			Expect(receipt.ComputeTaxedPrice(price, true, false).Equal(price)).To(BeTrue(), p)
		}
	})

	It("should add a non-negative multiple of 0.05", func() {
		step := decimal.RequireFromString("0.05")
		for _, p := range []string{"0.01", "0.99", "3.33", "18.99", "99.99", "1234.56"} {
			price := decimal.RequireFromString(p)
			tax := receipt.ComputeTaxedPrice(price, false, false).Sub(price)
			Expect(tax.IsNegative()).To(BeFalse(), p)
			Expect(tax.Mod(step).IsZero()).To(BeTrue(), p)
		}
	})
})

var _ = Describe("RateCalculator", func() {
	var calc receipt.RateCalculator

	BeforeEach(func() {
		calc = receipt.NewRateCalculator()
	})

	When("a different rounding increment is configured", func() {
		BeforeEach(func() {
			calc.Increment = decimal.RequireFromString("0.01")
		})

		It("should round to that increment", func() {
			taxed := calc.TaxedPrice(decimal.RequireFromString("12.49"), false, false)
			Expect(taxed.String()).To(Equal("13.74"))
			taxed = calc.TaxedPrice(decimal.RequireFromString("27.99"), false, true)
			Expect(taxed.String()).To(Equal("32.19"))
		})
	})

	When("the increment is zero", func() {
		BeforeEach(func() {
			calc.Increment = decimal.Zero
		})

		It("should leave the tax unrounded", func() {
			taxed := calc.TaxedPrice(decimal.RequireFromString("12.49"), false, false)
			Expect(taxed.Equal(decimal.RequireFromString("13.739"))).To(BeTrue())
		})
	})
})
