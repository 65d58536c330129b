package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/mocks"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

type paymentFixture struct {
	querier    *mocks.MockQuerier
	sink       *mocks.MockAccountingSink
	service    *services.PaymentService
	freelancer db.Freelancer
	contract   db.Contract
	payment    db.Payment
}

func newPaymentFixture(t *testing.T, status string) *paymentFixture {
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	sink := mocks.NewMockAccountingSink(ctrl)
	calculator := newCalculator(querier)
	service := services.NewPaymentService(querier, calculator, sink, nil)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	contract.FreelancerID = freelancer.ID

	payment := draftPayment("5000", "EUR")
	payment.Status = status
	payment.ContractID = contract.ID
	payment.FreelancerID = freelancer.ID
	payment.PaymentNumber = "PAY-2026-AB12CD"
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")
	payment.Version = 3

	return &paymentFixture{
		querier:    querier,
		sink:       sink,
		service:    service,
		freelancer: freelancer,
		contract:   contract,
		payment:    payment,
	}
}

// withStoredAmounts stamps the reverse-charge amount set onto the payment
// so a fresh computation reconciles against it.
func (f *paymentFixture) withStoredAmounts(net string) {
	gross := helpers.NumericToDecimal(f.payment.BaseAmount)
	f.payment.GrossAmount = helpers.DecimalToNumeric(gross)
	f.payment.VatAmount = helpers.DecimalToNumeric(decimal.Zero)
	f.payment.WithholdingAmount = helpers.DecimalToNumeric(decimal.Zero)
	f.payment.NetAmount = helpers.DecimalToNumeric(decimal.RequireFromString(net))
}

func (f *paymentFixture) expectCompute() {
	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().GetContract(gomock.Any(), f.contract.ID).Return(f.contract, nil)
	f.querier.EXPECT().GetFreelancer(gomock.Any(), f.freelancer.ID).Return(f.freelancer, nil)
	f.querier.EXPECT().ListPaymentItems(gomock.Any(), f.payment.ID).Return(nil, nil)
	f.querier.EXPECT().ListPaymentExpenses(gomock.Any(), f.payment.ID).Return(nil, nil)
}

func TestPaymentService_Submit_EmptyPayment(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)
	f.payment.BaseAmount = helpers.DecimalToNumeric(decimal.Zero)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().ListPaymentItems(gomock.Any(), f.payment.ID).Return(nil, nil)
	f.querier.EXPECT().ListPaymentExpenses(gomock.Any(), f.payment.ID).Return(nil, nil)

	_, err := f.service.Submit(context.Background(), f.payment.ID)
	require.Error(t, err)
	var emptyErr *taxerr.EmptyPaymentError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestPaymentService_Submit_OnlyFromDraft(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusApproved)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().ListPaymentItems(gomock.Any(), f.payment.ID).Return(nil, nil)
	f.querier.EXPECT().ListPaymentExpenses(gomock.Any(), f.payment.ID).Return(nil, nil)

	_, err := f.service.Submit(context.Background(), f.payment.ID)
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "only draft payments can be submitted")
}

func TestPaymentService_Approve_RefusesDriftedAmounts(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusPendingApproval)
	f.withStoredAmounts("4000")
	f.expectCompute()

	_, err := f.service.Approve(context.Background(), f.payment.ID, types.ApprovePaymentRequest{ApprovedBy: "finance@example.com"})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "recompute before approving")
}

func TestPaymentService_Approve_VersionConflict(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusPendingApproval)
	f.withStoredAmounts("5000")
	f.expectCompute()

	f.querier.EXPECT().ApprovePayment(gomock.Any(), db.ApprovePaymentParams{
		ID:         f.payment.ID,
		ApprovedBy: helpers.StringToNullableText("finance@example.com"),
		Version:    f.payment.Version,
	}).Return(db.Payment{}, pgx.ErrNoRows)

	_, err := f.service.Approve(context.Background(), f.payment.ID, types.ApprovePaymentRequest{ApprovedBy: "finance@example.com"})
	require.Error(t, err)
	var conflict *taxerr.ConcurrentModificationError
	assert.True(t, errors.As(err, &conflict))
}

func TestPaymentService_Approve_Success(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusPendingApproval)
	f.withStoredAmounts("5000")
	f.expectCompute()

	approved := f.payment
	approved.Status = constants.PaymentStatusApproved
	approved.Version = f.payment.Version + 1
	f.querier.EXPECT().ApprovePayment(gomock.Any(), gomock.Any()).Return(approved, nil)

	result, err := f.service.Approve(context.Background(), f.payment.ID, types.ApprovePaymentRequest{ApprovedBy: "finance@example.com"})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusApproved, result.Status)
}

func TestPaymentService_Reject_RequiresPendingStatus(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusPaid)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)

	_, err := f.service.Reject(context.Background(), f.payment.ID, types.RejectPaymentRequest{Reason: "wrong period"})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
}

func TestPaymentService_MarkPaid_DispatchesAccountingOnce(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusApproved)

	paid := f.payment
	paid.Status = constants.PaymentStatusPaid
	paid.GrossAmount = helpers.DecimalToNumeric(decimal.RequireFromString("2000"))
	paid.WithholdingAmount = helpers.DecimalToNumeric(decimal.RequireFromString("200"))
	paid.NetAmount = helpers.DecimalToNumeric(decimal.RequireFromString("1800"))
	paid.PaidAt = helpers.TimeToNullableTimestamptz(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().MarkPaymentPaid(gomock.Any(), gomock.Any()).Return(paid, nil)

	// the invoice entry already exists so only the withholding journal is
	// created and dispatched
	f.querier.EXPECT().GetAccountingEntry(gomock.Any(), db.GetAccountingEntryParams{
		PaymentID: paid.ID,
		EntryType: constants.AccountingEntryPurchaseInvoice,
	}).Return(db.AccountingEntry{ID: uuid.New(), Status: constants.AccountingStatusDispatched}, nil)
	f.querier.EXPECT().GetAccountingEntry(gomock.Any(), db.GetAccountingEntryParams{
		PaymentID: paid.ID,
		EntryType: constants.AccountingEntryWithholdingJournal,
	}).Return(db.AccountingEntry{}, pgx.ErrNoRows)

	entry := db.AccountingEntry{
		ID:        uuid.New(),
		PaymentID: paid.ID,
		EntryType: constants.AccountingEntryWithholdingJournal,
		Status:    constants.AccountingStatusPending,
	}
	f.querier.EXPECT().CreateAccountingEntry(gomock.Any(), db.CreateAccountingEntryParams{
		PaymentID: paid.ID,
		EntryType: constants.AccountingEntryWithholdingJournal,
		Status:    constants.AccountingStatusPending,
	}).Return(entry, nil)

	f.sink.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event types.AccountingEvent) (string, error) {
			assert.Equal(t, constants.AccountingEntryWithholdingJournal, event.EntryType)
			assert.Equal(t, paid.PaymentNumber, event.PaymentNumber)
			assert.True(t, event.WithholdingAmount.Equal(decimal.RequireFromString("200")))
			return "msg-123", nil
		})
	f.querier.EXPECT().MarkAccountingEntryDispatched(gomock.Any(), db.MarkAccountingEntryDispatchedParams{
		ID:        entry.ID,
		MessageID: helpers.StringToNullableText("msg-123"),
	}).Return(entry, nil)

	result, err := f.service.MarkPaid(context.Background(), f.payment.ID, types.MarkPaidRequest{
		PaidAt:           "2026-03-20",
		PaymentReference: "SEPA-778",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, result.Status)
}

func TestPaymentService_MarkPaid_SinkFailureDoesNotRollBack(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusApproved)

	paid := f.payment
	paid.Status = constants.PaymentStatusPaid
	paid.GrossAmount = helpers.DecimalToNumeric(decimal.RequireFromString("5000"))
	paid.WithholdingAmount = helpers.DecimalToNumeric(decimal.Zero)
	paid.NetAmount = helpers.DecimalToNumeric(decimal.RequireFromString("5000"))

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().MarkPaymentPaid(gomock.Any(), gomock.Any()).Return(paid, nil)

	entry := db.AccountingEntry{
		ID:        uuid.New(),
		PaymentID: paid.ID,
		EntryType: constants.AccountingEntryPurchaseInvoice,
		Status:    constants.AccountingStatusPending,
	}
	f.querier.EXPECT().GetAccountingEntry(gomock.Any(), gomock.Any()).Return(db.AccountingEntry{}, pgx.ErrNoRows)
	f.querier.EXPECT().CreateAccountingEntry(gomock.Any(), gomock.Any()).Return(entry, nil)
	f.sink.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return("", errors.New("queue unreachable"))
	f.querier.EXPECT().MarkAccountingEntryFailed(gomock.Any(), db.MarkAccountingEntryFailedParams{
		ID:          entry.ID,
		ErrorDetail: helpers.StringToNullableText("queue unreachable"),
	}).Return(entry, nil)

	result, err := f.service.MarkPaid(context.Background(), f.payment.ID, types.MarkPaidRequest{})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, result.Status)
}

func TestPaymentService_MarkPaid_RequiresApprovedStatus(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)

	_, err := f.service.MarkPaid(context.Background(), f.payment.ID, types.MarkPaidRequest{})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "only approved payments")
}

func TestPaymentService_Create_RequiresActiveContract(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)
	f.contract.Status = constants.ContractStatusDraft

	f.querier.EXPECT().GetContract(gomock.Any(), f.contract.ID).Return(f.contract, nil)

	_, err := f.service.Create(context.Background(), types.CreatePaymentRequest{
		ContractID: f.contract.ID.String(),
		BaseAmount: "1000",
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "active")
}

func TestPaymentService_Update_DraftOnly(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusPendingApproval)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)

	_, err := f.service.Update(context.Background(), f.payment.ID, types.UpdatePaymentRequest{
		BaseAmount: "6000",
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
}

func TestPaymentService_Update_RejectsInvertedPeriod(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)

	_, err := f.service.Update(context.Background(), f.payment.ID, types.UpdatePaymentRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-02-01",
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "period_end")
}

func TestPaymentService_Update_VersionConflict(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().UpdatePaymentDetails(gomock.Any(), gomock.Any()).Return(db.Payment{}, pgx.ErrNoRows)

	_, err := f.service.Update(context.Background(), f.payment.ID, types.UpdatePaymentRequest{
		Notes: "March engagement",
	})
	require.Error(t, err)
	var conflict *taxerr.ConcurrentModificationError
	assert.True(t, errors.As(err, &conflict))
}

func TestPaymentService_AddItem_DraftOnly(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusPendingApproval)

	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)

	_, err := f.service.AddItem(context.Background(), f.payment.ID, types.PaymentItemInput{
		Description: "Sprint work",
		Quantity:    "10",
		Rate:        "95",
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
}

func TestPaymentService_AddItem_MilestoneMustBeCompletedOrApproved(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)

	milestone := db.Milestone{
		ID:         uuid.New(),
		ContractID: f.contract.ID,
		Title:      "Design phase",
		Status:     constants.MilestoneStatusPending,
	}
	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().GetContract(gomock.Any(), f.contract.ID).Return(f.contract, nil)
	f.querier.EXPECT().GetMilestone(gomock.Any(), milestone.ID).Return(milestone, nil)

	_, err := f.service.AddItem(context.Background(), f.payment.ID, types.PaymentItemInput{
		Description: "Design phase",
		Amount:      "1500",
		MilestoneID: milestone.ID.String(),
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "completed or approved")
}

func TestPaymentService_AddItem_MilestonePaidOnce(t *testing.T) {
	f := newPaymentFixture(t, constants.PaymentStatusDraft)

	milestone := db.Milestone{
		ID:         uuid.New(),
		ContractID: f.contract.ID,
		Title:      "Delivery",
		Status:     constants.MilestoneStatusCompleted,
	}
	f.querier.EXPECT().GetPayment(gomock.Any(), f.payment.ID).Return(f.payment, nil)
	f.querier.EXPECT().GetContract(gomock.Any(), f.contract.ID).Return(f.contract, nil)
	f.querier.EXPECT().GetMilestone(gomock.Any(), milestone.ID).Return(milestone, nil)
	f.querier.EXPECT().CountNonRejectedPaymentsForMilestone(gomock.Any(), helpers.UUIDToPgUUID(milestone.ID)).
		Return(int64(1), nil)

	_, err := f.service.AddItem(context.Background(), f.payment.ID, types.PaymentItemInput{
		Description: "Delivery",
		Amount:      "1500",
		MilestoneID: milestone.ID.String(),
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "already has a payment")
}
