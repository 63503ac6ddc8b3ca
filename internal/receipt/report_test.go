package receipt_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/zombor/salestax/internal/receipt"
)

// failingWriter is an io.Writer that always fails
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

var _ = Describe("BuildReport", func() {
	var (
		items  []receipt.LineItem
		report receipt.Report
	)

	JustBeforeEach(func() {
		report = receipt.BuildReport(items)
	})

	When("building the report for a mixed bill", func() {
		BeforeEach(func() {
			items = receipt.ParseItems([]string{
				"2 book at 12.49",
				"1 music CD at 14.99",
				"1 chocolate bar at 0.85",
			})
		})

		It("should emit one line per item", func() {
			Expect(report.Lines).To(HaveLen(3))
			Expect(report.Lines[0].String()).To(Equal("2 book: 24.98"))
			Expect(report.Lines[1].String()).To(Equal("1 music CD: 16.49"))
			Expect(report.Lines[2].String()).To(Equal("1 chocolate bar: 0.85"))
		})

		It("should total the tax", func() {
			Expect(report.TotalTax.StringFixed(2)).To(Equal("1.50"))
		})

		It("should total the cost", func() {
			Expect(report.TotalCost.StringFixed(2)).To(Equal("42.32"))
		})
	})

	When("building the report for imported goods", func() {
		BeforeEach(func() {
			items = receipt.ParseItems([]string{
				"1 imported box of chocolates at 10.00",
				"1 imported bottle of perfume at 47.50",
			})
		})

		It("should total the tax", func() {
			Expect(report.TotalTax.StringFixed(2)).To(Equal("7.65"))
		})

		It("should total the cost", func() {
			Expect(report.TotalCost.StringFixed(2)).To(Equal("65.15"))
		})
	})

	When("the quantity multiplies the per-unit tax", func() {
		BeforeEach(func() {
			items = []receipt.LineItem{
				receipt.NewLineItem("imported bottle of perfume", 3, decimal.RequireFromString("27.99"), true, false, receipt.NewRateCalculator()),
			}
		})

		It("should multiply both price and tax", func() {
			Expect(report.Lines[0].Total.StringFixed(2)).To(Equal("96.57"))
			Expect(report.TotalTax.StringFixed(2)).To(Equal("12.60"))
		})
	})

	When("there are no items", func() {
		BeforeEach(func() {
			items = nil
		})

		It("should report zero totals", func() {
			Expect(report.Lines).To(BeEmpty())
			Expect(report.TotalTax.StringFixed(2)).To(Equal("0.00"))
			Expect(report.TotalCost.StringFixed(2)).To(Equal("0.00"))
		})
	})
})

var _ = Describe("Render", func() {
	var (
		report receipt.Report
		buf    *bytes.Buffer
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		report = receipt.BuildReport(receipt.ParseItems([]string{
			"1 imported box of chocolates at 10.00",
			"1 imported bottle of perfume at 47.50",
		}))
	})

	It("should write the receipt block", func() {
		Expect(receipt.Render(buf, 2, report)).To(Succeed())
		Expect(buf.String()).To(Equal("Output 2:\n" +
			"1 imported box of chocolates: 10.50\n" +
			"1 imported bottle of perfume: 54.65\n" +
			"Sales Taxes: 7.65\n" +
			"Total: 65.15\n"))
	})

	When("the writer fails", func() {
		It("returns the error", func() {
			Expect(receipt.Render(failingWriter{}, 1, report)).To(MatchError(ContainSubstring("disk full")))
		})
	})
})
