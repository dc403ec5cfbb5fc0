package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/credit"
	"github.com/DrGermanius/Gophercash/internal/ledger"
	"github.com/DrGermanius/Gophercash/internal/model"
	"github.com/DrGermanius/Gophercash/internal/notify"
	"github.com/DrGermanius/Gophercash/internal/payment"
	"github.com/DrGermanius/Gophercash/internal/settlement"
	"github.com/DrGermanius/Gophercash/internal/validation"
)

type IService interface {
	ValidateOrder(context.Context, model.ValidateInput) (model.OrderSnapshot, error)
	GetOrder(context.Context, int64) (model.Order, error)
	GetValidationHistory(context.Context, int64) ([]model.ValidationRecord, error)

	RecordCollection(ctx context.Context, operatorID int64, in model.CollectionInput) (model.CashCollectionEntry, error)
	ListCollections(ctx context.Context, status, channel string) ([]model.CollectionSummary, error)
	ReconcileCash(context.Context) (model.SettlementReport, error)
	ReviewQueue(context.Context) ([]model.SettlementOutcome, error)
	FlagDiscrepancy(context.Context, int64) (model.CashCollectionEntry, error)
	AcceptEntry(ctx context.Context, entryID, operatorID int64) (model.CashCollectionEntry, error)

	ListCreditAccounts(context.Context) ([]model.CreditAccount, error)
	UpsertCreditAccount(context.Context, model.CreditAccountInput) (model.CreditAccount, error)
	GetWalletStats(context.Context) (model.WalletStats, error)
}

// Notifier delivers status change events without blocking the caller.
type Notifier interface {
	Notify(model.StatusChangeEvent) <-chan struct{}
}

type balanceInvalidator interface {
	Invalidate(taxID string)
}

type Service struct {
	Repository IRepository
	credit     *credit.Evaluator
	gateway    ledger.Gateway
	notifier   Notifier
	tolerance  decimal.Decimal
	logger     *zap.SugaredLogger
}

// NewService wires the validation pipeline. gateway and notifier may be nil.
func NewService(repository IRepository, gateway ledger.Gateway, notifier Notifier, cfg *Config, logger *zap.SugaredLogger) *Service {
	tolerance := settlement.DefaultTolerance
	if !cfg.SettlementTolerance.IsZero() {
		tolerance = cfg.SettlementTolerance
	}

	return &Service{
		Repository: repository,
		credit:     credit.NewEvaluator(repository, gateway, cfg.LedgerTimeout, logger),
		gateway:    gateway,
		notifier:   notifier,
		tolerance:  tolerance,
		logger:     logger,
	}
}

func (s Service) ValidateOrder(ctx context.Context, in model.ValidateInput) (model.OrderSnapshot, error) {
	dc, err := s.decisionContext(ctx, in)
	if err != nil {
		return model.OrderSnapshot{}, s.refused(err)
	}

	t, err := validation.Next(dc)
	if err != nil {
		return model.OrderSnapshot{}, s.refused(err)
	}

	approved := dc.Decision == model.DecisionApproved
	notes := strings.TrimSpace(dc.Notes)
	advisories := []model.Advisory{}

	var want *model.CreditCharge
	if approved && dc.Method == model.PaymentCustomerCredit {
		advisories = append(advisories, dc.Credit.Advisories...)
		notes = credit.AppendAdvisories(notes, dc.Credit.Advisories)
		if dc.CreditApproved && dc.Credit.AccountID != 0 && dc.Credit.Active {
			want = &model.CreditCharge{AccountID: dc.Credit.AccountID, Amount: dc.Order.TotalAmount}
		}
	}

	av := model.AppliedValidation{
		OrderID:      dc.Order.ID,
		Transition:   t,
		Method:       dc.Method,
		Provider:     dc.Provider,
		Notes:        notes,
		Record:       newRecord(dc, t, notes),
		CreditBooked: dc.Order.CreditCharge,
	}
	// An approval restates the charge; re-running it with the same outcome books nothing.
	if approved && !model.SameCharge(dc.Order.CreditCharge, want) {
		av.CreditCharge = want
		av.CreditRelease = dc.Order.CreditCharge
	}

	rec, err := s.Repository.ApplyValidation(ctx, av)
	if err != nil {
		return model.OrderSnapshot{}, s.refused(err)
	}

	ValidationsTotal.WithLabelValues(string(dc.Decision), string(dc.Method)).Inc()
	for _, a := range advisories {
		CreditAdvisoriesTotal.WithLabelValues(string(a.Code)).Inc()
	}
	s.logger.Infow("order validated",
		"order", dc.Order.ID, "record", rec.ID, "decision", dc.Decision, "method", dc.Method,
		"from", t.FromStatus, "to", t.ToStatus, "operator", dc.OperatorID)

	if av.CreditCharge != nil || av.CreditRelease != nil {
		s.invalidateBalance(dc.Order.CustomerTaxID)
	}
	if approved && s.notifier != nil {
		s.notifier.Notify(notify.NewEvent(dc.Order.ID, dc.Order.Number, t.FromStatus, t.ToStatus))
	}

	order, err := s.Repository.GetOrderByID(ctx, dc.Order.ID)
	if err != nil {
		s.logger.Errorf("reload of validated order %d failed: %s", dc.Order.ID, err.Error())
		order = applied(dc.Order, av)
	}

	return model.OrderSnapshot{Order: order, Advisories: advisories}, nil
}

// decisionContext parses and checks the request and gathers every read the decision
// depends on. Nothing is written here.
func (s Service) decisionContext(ctx context.Context, in model.ValidateInput) (model.DecisionContext, error) {
	decision, err := parseDecision(in.Decision)
	if err != nil {
		return model.DecisionContext{}, err
	}

	declared, err := payment.ParseAmount(in.DeclaredAmount)
	if err != nil {
		return model.DecisionContext{}, fmt.Errorf("declared amount: %w", err)
	}
	transferred, err := payment.ParseAmount(in.TransferredAmount)
	if err != nil {
		return model.DecisionContext{}, fmt.Errorf("transferred amount: %w", err)
	}
	cash, err := payment.ParseAmount(in.CashAmount)
	if err != nil {
		return model.DecisionContext{}, fmt.Errorf("cash amount: %w", err)
	}

	order, err := s.Repository.GetOrderByID(ctx, in.OrderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return model.DecisionContext{}, fmt.Errorf("%w: %w", model.ErrOrderNotEligible, err)
		}
		return model.DecisionContext{}, err
	}
	if !validation.Eligible(order.Status) {
		return model.DecisionContext{}, fmt.Errorf("%w: order %d is %s", model.ErrOrderNotEligible, order.ID, order.Status)
	}

	dc := model.DecisionContext{
		Order:             order,
		OperatorID:        in.OperatorID,
		Decision:          decision,
		Method:            payment.NormalizeMethod(in.PaymentMethod, order.PaymentMethod),
		PaymentType:       payment.NormalizePaymentType(in.PaymentType),
		DeclaredAmount:    declared,
		TransferredAmount: transferred,
		CashAmount:        cash,
		EvidenceRef:       strings.TrimSpace(in.EvidenceRef),
		CashEvidenceRef:   strings.TrimSpace(in.CashEvidenceRef),
		PaymentReference:  strings.TrimSpace(in.PaymentReference),
		CreditApproved:    in.CreditApproved,
		Notes:             in.Notes,
	}

	if dc.Method == model.PaymentElectronicGateway {
		dc.Provider = payment.NormalizeProvider(in.Provider)
		if dc.Provider == "" {
			dc.Provider = payment.NormalizeProvider(order.ElectronicProvider)
		}
	}

	if decision != model.DecisionApproved {
		return dc, nil
	}

	switch dc.Method {
	case model.PaymentElectronicGateway:
		if dc.EvidenceRef == "" {
			has, err := s.Repository.HasPaymentEvidence(ctx, order.ID)
			if err != nil {
				return model.DecisionContext{}, err
			}
			if !has {
				return model.DecisionContext{}, fmt.Errorf("%w: order %d", model.ErrMissingEvidence, order.ID)
			}
		}
	case model.PaymentBankTransfer:
		split, err := payment.ReconcileTransfer(payment.TransferDeclaration{
			Total:       order.TotalAmount,
			Transferred: transferred,
			Cash:        cash,
			Mixed:       dc.PaymentType == model.PaymentTypeMixed,
		})
		if err != nil {
			return model.DecisionContext{}, err
		}
		dc.Split = &split
		dc.PaymentType = split.Type
	case model.PaymentCustomerCredit:
		dc.Credit = s.credit.Evaluate(ctx, order)
	}

	return dc, nil
}

func parseDecision(raw string) (model.Decision, error) {
	switch d := model.Decision(strings.ToLower(strings.TrimSpace(raw))); d {
	case model.DecisionApproved, model.DecisionRejected:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", model.ErrInvalidDecision, raw)
}

func newRecord(dc model.DecisionContext, t model.Transition, notes string) model.ValidationRecord {
	rec := model.ValidationRecord{
		OrderID:          dc.Order.ID,
		PaymentMethod:    dc.Method,
		PaymentType:      dc.PaymentType,
		Decision:         dc.Decision,
		FromStatus:       t.FromStatus,
		ToStatus:         t.ToStatus,
		TotalAmount:      dc.Order.TotalAmount,
		DeclaredAmount:   dc.DeclaredAmount,
		EvidenceRef:      dc.EvidenceRef,
		CashEvidenceRef:  dc.CashEvidenceRef,
		PaymentReference: dc.PaymentReference,
		Provider:         dc.Provider,
		CreditApproved:   dc.CreditApproved,
		Notes:            notes,
		ValidatedBy:      dc.OperatorID,
	}

	if dc.Split != nil {
		rec.TransferredAmount = decimal.NewNullDecimal(dc.Split.Transferred)
		rec.CashAmount = decimal.NewNullDecimal(dc.Split.Cash)
	} else {
		rec.TransferredAmount = dc.TransferredAmount
		rec.CashAmount = dc.CashAmount
	}

	if dc.Credit.Source != "" {
		rec.CreditLimit = dc.Credit.Limit
		rec.CreditBalance = dc.Credit.Balance
		rec.CreditAvailable = dc.Credit.Available
		rec.CreditSource = dc.Credit.Source
	}
	return rec
}

// applied projects a committed validation onto the order read before it.
func applied(o model.Order, av model.AppliedValidation) model.Order {
	o.ValidationStatus = av.Transition.ValidationStatus
	o.ValidationNotes = av.Notes
	if av.Transition.ValidationStatus == model.ValidationApproved {
		o.Status = av.Transition.ToStatus
		o.PaymentMethod = string(av.Method)
		o.ElectronicProvider = av.Provider
		o.RequiresPayment = av.Transition.Money.RequiresPayment
		o.PaymentAmount = av.Transition.Money.PaymentAmount
		o.PaidAmount = av.Transition.Money.PaidAmount
		if av.CreditCharge != nil || av.CreditRelease != nil {
			o.CreditCharge = av.CreditCharge
		}
	}
	return o
}

func (s Service) refused(err error) error {
	code, _ := errorCode(err)
	ValidationFailuresTotal.WithLabelValues(code).Inc()
	return err
}

func (s Service) invalidateBalance(taxID string) {
	taxID = payment.NormalizeTaxID(taxID)
	if inv, ok := s.gateway.(balanceInvalidator); ok && taxID != "" {
		inv.Invalidate(taxID)
	}
}

func (s Service) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	return s.Repository.GetOrderByID(ctx, id)
}

func (s Service) GetValidationHistory(ctx context.Context, orderID int64) ([]model.ValidationRecord, error) {
	history, err := s.Repository.GetValidationHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, model.ErrNoRecords
	}
	return history, nil
}

func (s Service) ListCreditAccounts(ctx context.Context) ([]model.CreditAccount, error) {
	accounts, err := s.Repository.ListCreditAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, model.ErrNoRecords
	}
	return accounts, nil
}

func (s Service) UpsertCreditAccount(ctx context.Context, in model.CreditAccountInput) (model.CreditAccount, error) {
	name := strings.TrimSpace(in.CustomerName)
	normalized := payment.NormalizeCustomerName(name)
	if normalized == "" {
		return model.CreditAccount{}, model.ErrInvalidCustomer
	}
	if in.CreditLimit.IsNegative() || in.CurrentBalance.IsNegative() {
		return model.CreditAccount{}, fmt.Errorf("%w: credit limit and balance must not be negative", model.ErrInvalidAmount)
	}

	status := in.Status
	if status == "" {
		status = model.CreditActive
	}
	if status != model.CreditActive && status != model.CreditInactive {
		return model.CreditAccount{}, fmt.Errorf("%w: credit status %q", ErrInvalidRequest, in.Status)
	}

	acc, err := s.Repository.UpsertCreditAccount(ctx, model.CreditAccount{
		CustomerName:   name,
		NormalizedName: normalized,
		TaxID:          payment.NormalizeTaxID(in.TaxID),
		CreditLimit:    in.CreditLimit,
		CurrentBalance: in.CurrentBalance,
		Status:         status,
		Notes:          strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return model.CreditAccount{}, err
	}

	s.invalidateBalance(acc.TaxID)
	return acc, nil
}

func (s Service) GetWalletStats(ctx context.Context) (model.WalletStats, error) {
	return s.Repository.GetWalletStats(ctx)
}
