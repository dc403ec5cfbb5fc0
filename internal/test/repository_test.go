package test_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Gophercash/internal"
	"github.com/DrGermanius/Gophercash/internal/model"
)

var orderColumns = []string{
	"id", "order_number", "customer_name", "customer_tax_id", "status", "payment_method", "electronic_provider",
	"requires_payment", "payment_amount", "paid_amount", "total_amount", "is_service", "validation_status", "validation_notes", "updated_at",
	"credit_account_id", "credit_charged_amount",
}

var entryColumns = []string{
	"id", "order_id", "channel", "amount", "status", "reference", "recorded_by", "created_at", "collected_at", "accepted_by", "accepted_at",
}

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
		ctx  context.Context
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
		ctx = context.Background()
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	approval := func() model.AppliedValidation {
		return model.AppliedValidation{
			OrderID: 1,
			Transition: model.Transition{
				FromStatus:       model.OrderStatusPendingWalletReview,
				ToStatus:         model.OrderStatusInLogistics,
				ValidationStatus: model.ValidationApproved,
				Money: model.Money{
					RequiresPayment: true,
					PaymentAmount:   decimal.NewFromInt(40000),
					PaidAmount:      decimal.NewFromInt(60000),
				},
			},
			Method: model.PaymentBankTransfer,
			Notes:  "ok",
			Record: model.ValidationRecord{
				PaymentMethod: model.PaymentBankTransfer,
				PaymentType:   model.PaymentTypeMixed,
				Decision:      model.DecisionApproved,
				FromStatus:    model.OrderStatusPendingWalletReview,
				ToStatus:      model.OrderStatusInLogistics,
				TotalAmount:   decimal.NewFromInt(100000),
				ValidatedBy:   5,
			},
		}
	}

	Context("Orders", func() {
		It("GetOrderByID without error", func() {
			rows := sqlmock.NewRows(orderColumns).AddRow(1, "PED-1", "Cliente", "900", "pending_wallet_review", "transferencia", "",
				true, "100000", "0", "100000", false, "pending", "", time.Now(), nil, "0")

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1 AND deleted_at IS NULL").
				WithArgs(1).WillReturnRows(rows).RowsWillBeClosed()

			o, err := repo.GetOrderByID(ctx, 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.Status).Should(Equal(model.OrderStatusPendingWalletReview))
			Expect(o.TotalAmount.Equal(decimal.NewFromInt(100000))).Should(BeTrue())
			Expect(o.CreditCharge).Should(BeNil())
		})
		It("GetOrderByID with a booked credit charge", func() {
			rows := sqlmock.NewRows(orderColumns).AddRow(1, "PED-1", "Cliente", "900", "in_logistics", "customer_credit", "",
				false, "0", "0", "80000", false, "approved", "", time.Now(), 7, "80000")

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").WithArgs(1).WillReturnRows(rows)

			o, err := repo.GetOrderByID(ctx, 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.CreditCharge).ShouldNot(BeNil())
			Expect(o.CreditCharge.AccountID).Should(Equal(int64(7)))
			Expect(o.CreditCharge.Amount.Equal(decimal.NewFromInt(80000))).Should(BeTrue())
		})
		It("GetOrderByID not found", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs(2).WillReturnRows(sqlmock.NewRows(orderColumns))

			_, err := repo.GetOrderByID(ctx, 2)
			Expect(errors.Is(err, model.ErrOrderNotFound)).Should(BeTrue())
		})
		It("GetOrderByID with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs(2).WillReturnError(errors.New("some error"))

			_, err := repo.GetOrderByID(ctx, 2)
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, model.ErrOrderNotFound)).Should(BeFalse())
		})
		It("HasPaymentEvidence", func() {
			mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM payment_evidences WHERE order_id = \\$1\\)").
				WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			has, err := repo.HasPaymentEvidence(ctx, 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(has).Should(BeTrue())
		})
	})

	Context("ApplyValidation", func() {
		It("writes order, record and credit charge in one transaction", func() {
			av := approval()
			av.CreditCharge = &model.CreditCharge{AccountID: 7, Amount: decimal.NewFromInt(100000)}
			now := time.Now()

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE orders SET status = \\$1").
				WithArgs(model.OrderStatusInLogistics, model.ValidationApproved, "ok", model.PaymentBankTransfer, "",
					true, sqlmock.AnyArg(), sqlmock.AnyArg(), 7, sqlmock.AnyArg(),
					1, model.OrderStatusPendingWalletReview, nil, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery("INSERT INTO validation_records").
				WillReturnRows(sqlmock.NewRows([]string{"id", "validated_at"}).AddRow(11, now))
			mock.ExpectExec("UPDATE credit_accounts SET current_balance = current_balance \\+ \\$1").
				WithArgs(sqlmock.AnyArg(), 7).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			rec, err := repo.ApplyValidation(ctx, av)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(rec.ID).Should(Equal(int64(11)))
			Expect(rec.OrderID).Should(Equal(int64(1)))
		})
		It("reverses a booked credit charge the order no longer carries", func() {
			av := approval()
			booked := &model.CreditCharge{AccountID: 7, Amount: decimal.NewFromInt(80000)}
			av.CreditBooked = booked
			av.CreditRelease = booked

			mock.ExpectBegin()
			mock.ExpectExec("AND credit_account_id IS NOT DISTINCT FROM \\$13 AND credit_charged_amount = \\$14").
				WithArgs(model.OrderStatusInLogistics, model.ValidationApproved, "ok", model.PaymentBankTransfer, "",
					true, sqlmock.AnyArg(), sqlmock.AnyArg(), nil, sqlmock.AnyArg(),
					1, model.OrderStatusPendingWalletReview, 7, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery("INSERT INTO validation_records").
				WillReturnRows(sqlmock.NewRows([]string{"id", "validated_at"}).AddRow(13, time.Now()))
			mock.ExpectExec("UPDATE credit_accounts SET current_balance = current_balance \\+ \\$1").
				WithArgs("-80000", 7).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			_, err := repo.ApplyValidation(ctx, av)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("moves no balance when the booked charge is restated", func() {
			av := approval()
			av.CreditBooked = &model.CreditCharge{AccountID: 7, Amount: decimal.NewFromInt(80000)}

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE orders SET status = \\$1").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
					sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 7, sqlmock.AnyArg(),
					1, sqlmock.AnyArg(), 7, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery("INSERT INTO validation_records").
				WillReturnRows(sqlmock.NewRows([]string{"id", "validated_at"}).AddRow(14, time.Now()))
			mock.ExpectCommit()

			_, err := repo.ApplyValidation(ctx, av)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("touches only validation fields on rejection", func() {
			av := approval()
			av.Transition.ToStatus = av.Transition.FromStatus
			av.Transition.ValidationStatus = model.ValidationRejected

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE orders SET validation_status = \\$1, validation_notes = \\$2").
				WithArgs(model.ValidationRejected, "ok", 1, model.OrderStatusPendingWalletReview).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery("INSERT INTO validation_records").
				WillReturnRows(sqlmock.NewRows([]string{"id", "validated_at"}).AddRow(12, time.Now()))
			mock.ExpectCommit()

			_, err := repo.ApplyValidation(ctx, av)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("rolls back when the order left the status", func() {
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE orders SET status").WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			_, err := repo.ApplyValidation(ctx, approval())
			Expect(errors.Is(err, model.ErrOrderNotEligible)).Should(BeTrue())
		})
		It("rolls back when the record insert fails", func() {
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE orders SET status").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery("INSERT INTO validation_records").WillReturnError(errors.New("some error"))
			mock.ExpectRollback()

			_, err := repo.ApplyValidation(ctx, approval())
			Expect(err).Should(HaveOccurred())
		})
		It("GetValidationHistory newest first", func() {
			cols := []string{"id", "order_id", "payment_method", "payment_type", "decision", "from_status", "to_status", "total_amount",
				"declared_amount", "transferred_amount", "cash_amount", "evidence_ref", "cash_evidence_ref", "payment_reference", "provider",
				"credit_limit", "credit_balance", "credit_available", "credit_source", "credit_approved", "notes", "validated_by", "validated_at"}
			rows := sqlmock.NewRows(cols).
				AddRow(2, 1, "bank_transfer", "mixed", "approved", "in_logistics", "in_logistics", "100000",
					nil, "70000", "30000", "", "", "", "", nil, nil, nil, "", false, "", 5, time.Now()).
				AddRow(1, 1, "bank_transfer", "mixed", "approved", "pending_wallet_review", "in_logistics", "100000",
					nil, "60000", "40000", "", "", "", "", nil, nil, nil, "", false, "", 5, time.Now().Add(-time.Hour))

			mock.ExpectQuery("SELECT (.+) FROM validation_records WHERE order_id = \\$1 ORDER BY validated_at DESC").
				WithArgs(1).WillReturnRows(rows).RowsWillBeClosed()

			history, err := repo.GetValidationHistory(ctx, 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(history).Should(HaveLen(2))
			Expect(history[0].ID).Should(Equal(int64(2)))
			Expect(history[0].DeclaredAmount.Valid).Should(BeFalse())
			Expect(history[0].TransferredAmount.Decimal.Equal(decimal.NewFromInt(70000))).Should(BeTrue())
		})
	})

	Context("Credit accounts", func() {
		creditColumns := []string{"id", "customer_name", "normalized_name", "tax_id", "credit_limit", "current_balance", "status", "notes", "updated_at"}

		It("FindCreditAccount falls back to tax id", func() {
			mock.ExpectQuery("SELECT (.+) FROM credit_accounts WHERE normalized_name = \\$1").
				WithArgs("EL MARTILLO").WillReturnRows(sqlmock.NewRows(creditColumns))
			mock.ExpectQuery("SELECT (.+) FROM credit_accounts WHERE tax_id = \\$1").
				WithArgs("9001234567").
				WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(7, "Ferretería El Martillo", "FERRETERIA EL MARTILLO", "9001234567",
					"1000000", "200000", "active", "", time.Now()))

			a, err := repo.FindCreditAccount(ctx, "EL MARTILLO", "9001234567")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(a.ID).Should(Equal(int64(7)))
			Expect(a.Status).Should(Equal(model.CreditActive))
		})
		It("FindCreditAccount without tax id stops at the name", func() {
			mock.ExpectQuery("SELECT (.+) FROM credit_accounts WHERE normalized_name = \\$1").
				WithArgs("NOBODY").WillReturnRows(sqlmock.NewRows(creditColumns))

			_, err := repo.FindCreditAccount(ctx, "NOBODY", "")
			Expect(err).Should(Equal(model.ErrNoRecords))
		})
		It("UpsertCreditAccount", func() {
			mock.ExpectQuery("INSERT INTO credit_accounts").
				WithArgs("Cliente", "CLIENTE", "900", sqlmock.AnyArg(), sqlmock.AnyArg(), model.CreditActive, "").
				WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(3, time.Now()))

			a, err := repo.UpsertCreditAccount(ctx, model.CreditAccount{
				CustomerName:   "Cliente",
				NormalizedName: "CLIENTE",
				TaxID:          "900",
				CreditLimit:    decimal.NewFromInt(10),
				CurrentBalance: decimal.Zero,
				Status:         model.CreditActive,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(a.ID).Should(Equal(int64(3)))
		})
		It("GetWalletStats", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE status = 'pending_wallet_review'").
				WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e"}).AddRow(4, "3000000", "1200000", 9, 1))

			s, err := repo.GetWalletStats(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.PendingValidations).Should(Equal(int64(4)))
			Expect(s.TotalCredit.Equal(decimal.NewFromInt(3000000))).Should(BeTrue())
			Expect(s.ExhaustedCredit).Should(Equal(int64(1)))
		})
	})

	Context("Cash collections", func() {
		It("CreateCollectionEntry", func() {
			mock.ExpectQuery("INSERT INTO cash_collection_entries").
				WithArgs(1, model.ChannelCourier, sqlmock.AnyArg(), model.EntryPending, "R-1", 4).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(20, time.Now()))

			e, err := repo.CreateCollectionEntry(ctx, model.CashCollectionEntry{
				OrderID: 1, Channel: model.ChannelCourier, Amount: decimal.NewFromInt(5000), Reference: "R-1", RecordedBy: 4,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(e.ID).Should(Equal(int64(20)))
			Expect(e.Status).Should(Equal(model.EntryPending))
		})
		It("ListCollectionSummaries applies filters", func() {
			mock.ExpectQuery("FROM cash_collection_entries e JOIN orders o ON o.id = e.order_id WHERE e.status = \\$1 AND e.channel = \\$2 GROUP BY").
				WithArgs(model.EntryPending, model.ChannelPOS).
				WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "total_amount", "paid_amount", "count", "sum", "channels"}).
					AddRow(1, "PED-1", "100000", "0", 2, "99950", "pos"))

			s, err := repo.ListCollectionSummaries(ctx, model.CollectionFilter{Status: model.EntryPending, Channel: model.ChannelPOS})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).Should(HaveLen(1))
			Expect(s[0].Channels).Should(ConsistOf(model.ChannelPOS))
			Expect(s[0].EntryCount).Should(Equal(2))
		})
		It("ListCollectionSummaries without filters", func() {
			mock.ExpectQuery("FROM cash_collection_entries e JOIN orders o ON o.id = e.order_id GROUP BY").
				WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "total_amount", "paid_amount", "count", "sum", "channels"}).
					AddRow(1, "PED-1", "100000", "0", 2, "99950", "courier,pos"))

			s, err := repo.ListCollectionSummaries(ctx, model.CollectionFilter{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s[0].Channels).Should(ConsistOf(model.ChannelCourier, model.ChannelPOS))
		})
		It("ListSettlementCandidates includes owed orders without entries", func() {
			mock.ExpectQuery("FROM orders o LEFT JOIN cash_collection_entries e ON e.order_id = o.id").
				WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "total_amount", "paid_amount", "settled", "open", "entries"}).
					AddRow(1, "PED-1", "100000", "0", "0", "99950", 3).
					AddRow(2, "PED-2", "100000", "60000", "0", "0", 0))

			c, err := repo.ListSettlementCandidates(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(c).Should(HaveLen(2))
			Expect(c[0].OpenEntries).Should(Equal(3))
			Expect(c[0].OpenAmount.Equal(decimal.NewFromInt(99950))).Should(BeTrue())
			Expect(c[1].OpenEntries).Should(BeZero())
			Expect(c[1].PaidAmount.Equal(decimal.NewFromInt(60000))).Should(BeTrue())
		})
		It("SettleOrderEntries commits when all entries moved", func() {
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE cash_collection_entries SET status = 'collected'").
				WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 3))
			mock.ExpectCommit()

			Expect(repo.SettleOrderEntries(ctx, 1, 3)).Should(Succeed())
		})
		It("SettleOrderEntries rolls back on a count mismatch", func() {
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE cash_collection_entries SET status = 'collected'").
				WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 4))
			mock.ExpectRollback()

			err := repo.SettleOrderEntries(ctx, 1, 3)
			Expect(errors.Is(err, model.ErrEntryStateConflict)).Should(BeTrue())
		})
		It("AcceptEntry moves a collected entry", func() {
			now := time.Now()
			mock.ExpectQuery("UPDATE cash_collection_entries SET status = 'accepted'").
				WithArgs(20, 9).
				WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(20, 1, "courier", "5000", "accepted", "", 4, now, now, 9, now))

			e, err := repo.AcceptEntry(ctx, 20, 9)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(e.Status).Should(Equal(model.EntryAccepted))
			Expect(*e.AcceptedBy).Should(Equal(int64(9)))
		})
		It("AcceptEntry refuses an entry in the wrong status", func() {
			mock.ExpectQuery("UPDATE cash_collection_entries SET status = 'accepted'").
				WithArgs(20, 9).WillReturnRows(sqlmock.NewRows(entryColumns))
			mock.ExpectQuery("SELECT status FROM cash_collection_entries WHERE id = \\$1").
				WithArgs(20).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))

			_, err := repo.AcceptEntry(ctx, 20, 9)
			Expect(errors.Is(err, model.ErrEntryStateConflict)).Should(BeTrue())
		})
		It("FlagDiscrepancy on a missing entry", func() {
			mock.ExpectQuery("UPDATE cash_collection_entries SET status = 'discrepancy'").
				WithArgs(21).WillReturnRows(sqlmock.NewRows(entryColumns))
			mock.ExpectQuery("SELECT status FROM cash_collection_entries WHERE id = \\$1").
				WithArgs(21).WillReturnError(sql.ErrNoRows)

			_, err := repo.FlagDiscrepancy(ctx, 21)
			Expect(errors.Is(err, model.ErrEntryNotFound)).Should(BeTrue())
		})
		It("FlagDiscrepancy on a pending entry", func() {
			mock.ExpectQuery("UPDATE cash_collection_entries SET status = 'discrepancy'").
				WithArgs(22).
				WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(22, 1, "pos", "100", "discrepancy", "", 4, time.Now(), nil, nil, nil))

			e, err := repo.FlagDiscrepancy(ctx, 22)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(e.Status).Should(Equal(model.EntryDiscrepancy))
			Expect(e.CollectedAt).Should(BeNil())
		})
	})
})
