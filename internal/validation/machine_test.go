package validation_test

import (
	"errors"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Gophercash/internal/model"
	"github.com/DrGermanius/Gophercash/internal/validation"
)

func order(status model.OrderStatus) model.Order {
	return model.Order{
		ID:            1,
		Number:        "PED-0001",
		Status:        status,
		PaymentMethod: "efectivo",
		TotalAmount:   decimal.NewFromInt(100000),
		PaymentAmount: decimal.NewFromInt(100000),
	}
}

var _ = Describe("State machine", func() {
	DescribeTable("Eligible",
		func(s model.OrderStatus, expected bool) {
			Expect(validation.Eligible(s)).Should(Equal(expected))
		},
		Entry("pending wallet review", model.OrderStatusPendingWalletReview, true),
		Entry("in logistics", model.OrderStatusInLogistics, true),
		Entry("ready for delivery", model.OrderStatusReadyForDelivery, true),
		Entry("pending billing", model.OrderStatusPendingBilling, false),
		Entry("in packaging", model.OrderStatusInPackaging, false),
		Entry("delivered", model.OrderStatusDelivered, false),
		Entry("cancelled", model.OrderStatusCancelled, false),
		Entry("special handling", model.OrderStatusSpecialHandling, false),
	)

	It("refuses ineligible orders", func() {
		_, err := validation.Next(model.DecisionContext{
			Order:    order(model.OrderStatusDelivered),
			Decision: model.DecisionApproved,
			Method:   model.PaymentCash,
		})
		Expect(errors.Is(err, model.ErrOrderNotEligible)).Should(BeTrue())
	})

	It("refuses unknown decisions", func() {
		_, err := validation.Next(model.DecisionContext{
			Order:    order(model.OrderStatusPendingWalletReview),
			Decision: "maybe",
			Method:   model.PaymentCash,
		})
		Expect(errors.Is(err, model.ErrInvalidDecision)).Should(BeTrue())
	})

	It("keeps status and money on rejection", func() {
		o := order(model.OrderStatusPendingWalletReview)
		o.PaidAmount = decimal.NewFromInt(5)

		t, err := validation.Next(model.DecisionContext{Order: o, Decision: model.DecisionRejected, Method: model.PaymentBankTransfer})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.ToStatus).Should(Equal(model.OrderStatusPendingWalletReview))
		Expect(t.ValidationStatus).Should(Equal(model.ValidationRejected))
		Expect(t.Money.PaidAmount.Equal(decimal.NewFromInt(5))).Should(BeTrue())
		Expect(t.Money.PaymentAmount.Equal(o.PaymentAmount)).Should(BeTrue())
	})

	It("sends an approved order to logistics", func() {
		t, err := validation.Next(model.DecisionContext{
			Order:    order(model.OrderStatusPendingWalletReview),
			Decision: model.DecisionApproved,
			Method:   model.PaymentCash,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.FromStatus).Should(Equal(model.OrderStatusPendingWalletReview))
		Expect(t.ToStatus).Should(Equal(model.OrderStatusInLogistics))
		Expect(t.ValidationStatus).Should(Equal(model.ValidationApproved))
	})

	It("never moves logistics backwards", func() {
		t, err := validation.Next(model.DecisionContext{
			Order:    order(model.OrderStatusReadyForDelivery),
			Decision: model.DecisionApproved,
			Method:   model.PaymentCash,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.ToStatus).Should(Equal(model.OrderStatusReadyForDelivery))

		t, err = validation.Next(model.DecisionContext{
			Order:    order(model.OrderStatusInLogistics),
			Decision: model.DecisionApproved,
			Method:   model.PaymentCash,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.ToStatus).Should(Equal(model.OrderStatusInLogistics))
	})

	It("delivers service orders directly", func() {
		o := order(model.OrderStatusPendingWalletReview)
		o.IsService = true

		t, err := validation.Next(model.DecisionContext{Order: o, Decision: model.DecisionApproved, Method: model.PaymentBankTransfer,
			Split: &model.Split{Type: model.PaymentTypeSingle, Money: model.Money{PaidAmount: o.TotalAmount}}})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.ToStatus).Should(Equal(model.OrderStatusDelivered))
	})

	It("never lowers the pipeline rank on approval", func() {
		for _, s := range []model.OrderStatus{model.OrderStatusPendingWalletReview, model.OrderStatusInLogistics, model.OrderStatusReadyForDelivery} {
			for _, service := range []bool{false, true} {
				o := order(s)
				o.IsService = service
				t, err := validation.Next(model.DecisionContext{Order: o, Decision: model.DecisionApproved, Method: model.PaymentCash})
				Expect(err).ShouldNot(HaveOccurred())
				Expect(t.ToStatus.AtOrPast(t.FromStatus)).Should(BeTrue())
			}
		}
	})
})

var _ = Describe("Settle", func() {
	total := decimal.NewFromInt(100000)

	It("leaves cash orders fully owed", func() {
		m, err := validation.Settle(model.DecisionContext{Order: order(model.OrderStatusPendingWalletReview), Method: model.PaymentCash})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(m.RequiresPayment).Should(BeTrue())
		Expect(m.PaymentAmount.Equal(total)).Should(BeTrue())
		Expect(m.PaidAmount.IsZero()).Should(BeTrue())
	})

	It("treats gateway payments as paid in full by default", func() {
		m, err := validation.Settle(model.DecisionContext{Order: order(model.OrderStatusPendingWalletReview), Method: model.PaymentElectronicGateway})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(m.RequiresPayment).Should(BeFalse())
		Expect(m.PaidAmount.Equal(total)).Should(BeTrue())
		Expect(m.PaymentAmount.IsZero()).Should(BeTrue())
	})

	It("keeps the rest owed for a partial card payment", func() {
		m, err := validation.Settle(model.DecisionContext{
			Order:          order(model.OrderStatusPendingWalletReview),
			Method:         model.PaymentCreditCard,
			DeclaredAmount: decimal.NewNullDecimal(decimal.NewFromInt(40000)),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(m.RequiresPayment).Should(BeTrue())
		Expect(m.PaidAmount.Equal(decimal.NewFromInt(40000))).Should(BeTrue())
		Expect(m.PaymentAmount.Equal(decimal.NewFromInt(60000))).Should(BeTrue())
	})

	It("rejects a declared amount above the total", func() {
		_, err := validation.Settle(model.DecisionContext{
			Order:          order(model.OrderStatusPendingWalletReview),
			Method:         model.PaymentCreditCard,
			DeclaredAmount: decimal.NewNullDecimal(decimal.NewFromInt(150000)),
		})
		Expect(errors.Is(err, model.ErrInvalidAmount)).Should(BeTrue())
	})

	It("clears the money fields for customer credit", func() {
		m, err := validation.Settle(model.DecisionContext{Order: order(model.OrderStatusPendingWalletReview), Method: model.PaymentCustomerCredit})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(m.RequiresPayment).Should(BeFalse())
		Expect(m.PaidAmount.IsZero()).Should(BeTrue())
		Expect(m.PaymentAmount.IsZero()).Should(BeTrue())
	})

	It("needs a reconciled split for bank transfers", func() {
		_, err := validation.Settle(model.DecisionContext{Order: order(model.OrderStatusPendingWalletReview), Method: model.PaymentBankTransfer})
		Expect(errors.Is(err, model.ErrInvalidAmount)).Should(BeTrue())
	})

	It("keeps paid plus owed equal to the total", func() {
		for _, m := range []model.PaymentMethod{model.PaymentCash, model.PaymentElectronicGateway, model.PaymentCreditCard} {
			money, err := validation.Settle(model.DecisionContext{Order: order(model.OrderStatusPendingWalletReview), Method: m})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(money.PaidAmount.Add(money.PaymentAmount).Equal(total)).Should(BeTrue())
		}
	})
})
