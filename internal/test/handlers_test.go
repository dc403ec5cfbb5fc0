package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Gophercash/internal"
	mock_internal "github.com/DrGermanius/Gophercash/internal/mock"
	"github.com/DrGermanius/Gophercash/internal/model"
)

const testSecret = "secret"

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var _ = Describe("Handlers", func() {
	var (
		ctrl  *gomock.Controller
		srv   *mock_internal.MockIService
		app   *fiber.App
		token string
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		srv = mock_internal.NewMockIService(ctrl)

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		app = fiber.New()
		internal.SetupRoutes(app, internal.NewHandlers(srv, logger.Sugar()), testSecret)

		token, err = internal.IssueOperatorToken(testSecret, 5)
		Expect(err).ShouldNot(HaveOccurred())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	do := func(method, path, body string) *http.Response {
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, r)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req, -1)
		Expect(err).ShouldNot(HaveOccurred())
		return resp
	}

	decodeError := func(resp *http.Response) errorBody {
		defer resp.Body.Close()
		var b errorBody
		Expect(json.NewDecoder(resp.Body).Decode(&b)).Should(Succeed())
		return b
	}

	Context("Auth", func() {
		It("rejects requests without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
			resp, err := app.Test(req, -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
			Expect(decodeError(resp).Code).Should(Equal(internal.CodeUnauthorized))
		})
		It("rejects tokens signed with another secret", func() {
			other, err := internal.IssueOperatorToken("other", 5)
			Expect(err).ShouldNot(HaveOccurred())
			token = other

			resp := do(http.MethodGet, "/api/orders/1", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("accepts the token cookie", func() {
			srv.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(model.Order{ID: 1}, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
			req.AddCookie(&http.Cookie{Name: "token", Value: token})
			resp, err := app.Test(req, -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
		})
		It("serves metrics without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			resp, err := app.Test(req, -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
		})
	})

	Context("Validation", func() {
		It("passes the operator and amounts given as numbers or strings", func() {
			srv.EXPECT().ValidateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, in model.ValidateInput) (model.OrderSnapshot, error) {
					defer GinkgoRecover()
					Expect(in.OrderID).Should(Equal(int64(12)))
					Expect(in.OperatorID).Should(Equal(int64(5)))
					Expect(in.TransferredAmount).Should(Equal("60000"))
					Expect(in.CashAmount).Should(Equal("40000.50"))
					Expect(in.DeclaredAmount).Should(BeEmpty())
					Expect(in.Decision).Should(Equal("approved"))
					return model.OrderSnapshot{
						Order:      model.Order{ID: 12, Status: model.OrderStatusInLogistics},
						Advisories: []model.Advisory{},
					}, nil
				})

			resp := do(http.MethodPost, "/api/orders/12/validation",
				`{"decision":"approved","paymentMethod":"transferencia","transferredAmount":60000,"cashAmount":"40000.50","declaredAmount":null}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var snap model.OrderSnapshot
			Expect(json.NewDecoder(resp.Body).Decode(&snap)).Should(Succeed())
			Expect(snap.Order.Status).Should(Equal(model.OrderStatusInLogistics))
			Expect(snap.Advisories).ShouldNot(BeNil())
		})
		It("refuses an amount that is neither number nor string", func() {
			resp := do(http.MethodPost, "/api/orders/12/validation", `{"decision":"approved","cashAmount":true}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("refuses a non numeric order id", func() {
			resp := do(http.MethodPost, "/api/orders/abc/validation", `{"decision":"approved"}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
			Expect(decodeError(resp).Code).Should(Equal(internal.CodeInvalidRequest))
		})

		DescribeTable("maps refusals to codes",
			func(err error, status int, code string) {
				srv.EXPECT().ValidateOrder(gomock.Any(), gomock.Any()).Return(model.OrderSnapshot{}, err)

				resp := do(http.MethodPost, "/api/orders/1/validation", `{"decision":"approved"}`)
				Expect(resp.StatusCode).Should(Equal(status))
				b := decodeError(resp)
				Expect(b.Status).Should(Equal("error"))
				Expect(b.Code).Should(Equal(code))
			},
			Entry("invalid decision", model.ErrInvalidDecision, fiber.StatusBadRequest, internal.CodeInvalidDecision),
			Entry("invalid amount", fmt.Errorf("%w: x", model.ErrInvalidAmount), fiber.StatusBadRequest, internal.CodeInvalidAmount),
			Entry("ineligible order", fmt.Errorf("%w: in_packaging", model.ErrOrderNotEligible), fiber.StatusConflict, internal.CodeOrderNotEligible),
			Entry("missing order", fmt.Errorf("%w: %w", model.ErrOrderNotEligible, model.ErrOrderNotFound), fiber.StatusNotFound, internal.CodeOrderNotEligible),
			Entry("mixed mismatch", model.ErrMixedPaymentMismatch, fiber.StatusUnprocessableEntity, internal.CodeMixedPaymentMismatch),
			Entry("mixed invalid amounts", model.ErrMixedPaymentInvalidAmounts, fiber.StatusUnprocessableEntity, internal.CodeMixedPaymentInvalidAmounts),
			Entry("missing evidence", model.ErrMissingEvidence, fiber.StatusUnprocessableEntity, internal.CodeMissingEvidence),
			Entry("internal", errors.New("connection reset"), fiber.StatusInternalServerError, internal.CodeInternal),
		)

		It("hides internal error details", func() {
			srv.EXPECT().ValidateOrder(gomock.Any(), gomock.Any()).Return(model.OrderSnapshot{}, errors.New("pq: password leaked"))

			resp := do(http.MethodPost, "/api/orders/1/validation", `{"decision":"approved"}`)
			Expect(decodeError(resp).Message).Should(Equal("internal error"))
		})
		It("answers no content on an empty history", func() {
			srv.EXPECT().GetValidationHistory(gomock.Any(), int64(3)).Return(nil, model.ErrNoRecords)

			resp := do(http.MethodGet, "/api/orders/3/validations", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNoContent))
		})
	})

	Context("Cash", func() {
		It("records a collection", func() {
			srv.EXPECT().RecordCollection(gomock.Any(), int64(5), gomock.Any()).
				DoAndReturn(func(_ interface{}, _ int64, in model.CollectionInput) (model.CashCollectionEntry, error) {
					defer GinkgoRecover()
					Expect(in.OrderID).Should(Equal(int64(1)))
					Expect(in.Amount.Equal(decimal.NewFromInt(5000))).Should(BeTrue())
					return model.CashCollectionEntry{ID: 9, OrderID: 1, Status: model.EntryPending}, nil
				})

			resp := do(http.MethodPost, "/api/cash/entries", `{"orderId":1,"channel":"courier","amount":5000}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusCreated))
		})
		It("refuses a collection without order", func() {
			resp := do(http.MethodPost, "/api/cash/entries", `{"channel":"courier","amount":5000}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("maps an unknown channel", func() {
			srv.EXPECT().RecordCollection(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(model.CashCollectionEntry{}, fmt.Errorf("%w: drone", model.ErrInvalidChannel))

			resp := do(http.MethodPost, "/api/cash/entries", `{"orderId":1,"channel":"drone","amount":5000}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
			Expect(decodeError(resp).Code).Should(Equal(internal.CodeInvalidChannel))
		})
		It("passes collection filters", func() {
			srv.EXPECT().ListCollections(gomock.Any(), "pending", "pos").Return(nil, model.ErrNoRecords)

			resp := do(http.MethodGet, "/api/cash/collections?status=pending&channel=pos", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNoContent))
		})
		It("returns the reconciliation report", func() {
			srv.EXPECT().ReconcileCash(gomock.Any()).Return(model.SettlementReport{
				Settled:     []model.SettlementOutcome{{Settled: true}},
				NeedsReview: []model.SettlementOutcome{},
				Conflicts:   []int64{},
			}, nil)

			resp := do(http.MethodPost, "/api/cash/reconcile", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var report model.SettlementReport
			Expect(json.NewDecoder(resp.Body).Decode(&report)).Should(Succeed())
			Expect(report.Settled).Should(HaveLen(1))
		})
		It("answers no content on an empty review queue", func() {
			srv.EXPECT().ReviewQueue(gomock.Any()).Return(nil, model.ErrNoRecords)

			resp := do(http.MethodGet, "/api/cash/review", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNoContent))
		})
		It("maps entry conflicts", func() {
			srv.EXPECT().AcceptEntry(gomock.Any(), int64(4), int64(5)).
				Return(model.CashCollectionEntry{}, fmt.Errorf("%w: entry 4 is pending", model.ErrEntryStateConflict))

			resp := do(http.MethodPost, "/api/cash/entries/4/accept", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusConflict))
			Expect(decodeError(resp).Code).Should(Equal(internal.CodeEntryStateConflict))
		})
		It("maps missing entries", func() {
			srv.EXPECT().FlagDiscrepancy(gomock.Any(), int64(4)).
				Return(model.CashCollectionEntry{}, fmt.Errorf("%w: 4", model.ErrEntryNotFound))

			resp := do(http.MethodPost, "/api/cash/entries/4/discrepancy", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNotFound))
			Expect(decodeError(resp).Code).Should(Equal(internal.CodeEntryNotFound))
		})
	})

	Context("Credit", func() {
		It("upserts an account", func() {
			srv.EXPECT().UpsertCreditAccount(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, in model.CreditAccountInput) (model.CreditAccount, error) {
					defer GinkgoRecover()
					Expect(in.CustomerName).Should(Equal("Cliente"))
					return model.CreditAccount{ID: 1, CustomerName: in.CustomerName, Status: model.CreditActive}, nil
				})

			resp := do(http.MethodPut, "/api/credit/accounts", `{"customerName":"Cliente","creditLimit":"1000"}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
		})
		It("maps a blank customer", func() {
			srv.EXPECT().UpsertCreditAccount(gomock.Any(), gomock.Any()).Return(model.CreditAccount{}, model.ErrInvalidCustomer)

			resp := do(http.MethodPut, "/api/credit/accounts", `{"customerName":" "}`)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
			Expect(decodeError(resp).Code).Should(Equal(internal.CodeInvalidRequest))
		})
		It("answers no content without accounts", func() {
			srv.EXPECT().ListCreditAccounts(gomock.Any()).Return(nil, model.ErrNoRecords)

			resp := do(http.MethodGet, "/api/credit/accounts", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNoContent))
		})
		It("returns wallet stats", func() {
			srv.EXPECT().GetWalletStats(gomock.Any()).Return(model.WalletStats{PendingValidations: 3}, nil)

			resp := do(http.MethodGet, "/api/wallet/stats", "")
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
		})
	})
})
