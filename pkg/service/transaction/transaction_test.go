package transaction_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/internal/fixtures/memory"
	domaintx "github.com/hamzaimran/bitpro/pkg/domain/transaction"
	"github.com/hamzaimran/bitpro/pkg/dto"
	notificationsvc "github.com/hamzaimran/bitpro/pkg/service/notification"
	transactionsvc "github.com/hamzaimran/bitpro/pkg/service/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*transactionsvc.Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notificationsvc.New(store, logger)
	return transactionsvc.New(store, notifier, logger), store
}

func seedUser(t *testing.T, store *memory.Store, role string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := store.Users().Create(context.Background(), &dto.UserCreate{
		ID:        id,
		FirstName: "Ali",
		LastName:  "Khan",
		Email:     id.String() + "@example.com",
		Phone:     "03001234567",
		Easypaisa: "03001234567",
		Role:      role,
		Password:  "x",
		IsActive:  true,
	})
	require.NoError(t, err)
	return id
}

func TestSubmit_DepositNotifiesAdminsAndSubmitter(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")

	tx, err := svc.Submit(ctx, userID, "deposit", 500, "receipt.png")
	require.NoError(err)
	assert.Equal("pending", tx.Status)
	assert.Equal(int64(500), tx.Amount)
	assert.Equal(1, store.TransactionCount())

	adminNotifs, err := store.Notifications().ListRecent(ctx, adminID, 10)
	require.NoError(err)
	require.Len(adminNotifs, 1)
	assert.Equal("New deposit request from Ali Khan: PKR 500", adminNotifs[0].Message)
	assert.Equal("transaction", adminNotifs[0].Type)
	require.NotNil(adminNotifs[0].RefID)
	assert.Equal(tx.ID, *adminNotifs[0].RefID)

	ownNotifs, err := store.Notifications().ListRecent(ctx, userID, 10)
	require.NoError(err)
	require.Len(ownNotifs, 1)
	assert.Equal("Your deposit request of PKR 500 is pending.", ownNotifs[0].Message)
}

func TestSubmit_WithdrawalBelowMinimum(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	svc, store := newService(t)

	userID := seedUser(t, store, "user")
	tx, err := svc.Submit(context.Background(), userID, "withdrawal", 50, "")
	assert.ErrorIs(err, domaintx.ErrAmountBelowMinimum)
	assert.Nil(tx)
	assert.Equal(0, store.TransactionCount())
	assert.Equal(0, store.NotificationCount())
}

func TestSubmit_DepositWithoutProof(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	userID := seedUser(t, store, "user")
	_, err := svc.Submit(context.Background(), userID, "deposit", 500, "")
	assert.ErrorIs(t, err, domaintx.ErrProofRequired)
	assert.Equal(t, 0, store.TransactionCount())
}

func TestSubmit_SurvivesNotificationFailure(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)

	userID := seedUser(t, store, "user")
	store.FailNotifications = true

	tx, err := svc.Submit(context.Background(), userID, "withdrawal", 200, "")
	require.NoError(err)
	assert.NotNil(tx)
	assert.Equal(1, store.TransactionCount())
	assert.Equal(0, store.NotificationCount())
}

func TestReview_Approve(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")
	tx, err := svc.Submit(ctx, userID, "deposit", 500, "receipt.png")
	require.NoError(err)

	updated, err := svc.Review(ctx, adminID, tx.ID, "approved", "looks good", "")
	require.NoError(err)
	assert.Equal("approved", updated.Status)
	assert.Equal("looks good", updated.AdminComment)
	require.NotNil(updated.ApprovedBy)
	assert.Equal(adminID, *updated.ApprovedBy)
	assert.NotNil(updated.ApprovedAt)
	assert.Equal("receipt.png", updated.Screenshot)

	notifs, err := store.Notifications().ListRecent(ctx, userID, 10)
	require.NoError(err)
	require.Len(notifs, 2)
	assert.Equal("Your deposit of PKR 500 was approved.", notifs[0].Message)
}

func TestReview_ApproveReplacesScreenshot(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")
	tx, err := svc.Submit(ctx, userID, "deposit", 500, "receipt.png")
	require.NoError(t, err)

	updated, err := svc.Review(ctx, adminID, tx.ID, "approved", "", "proof-of-transfer.png")
	require.NoError(t, err)
	assert.Equal(t, "proof-of-transfer.png", updated.Screenshot)
}

func TestReview_RejectIncludesComment(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")
	tx, err := svc.Submit(ctx, userID, "withdrawal", 300, "")
	require.NoError(err)

	updated, err := svc.Review(ctx, adminID, tx.ID, "rejected", "insufficient balance", "screenshot.png")
	require.NoError(err)
	assert.Equal(t, "rejected", updated.Status)
	// A rejection never attaches a screenshot.
	assert.Equal(t, "", updated.Screenshot)

	notifs, err := store.Notifications().ListRecent(ctx, userID, 10)
	require.NoError(err)
	require.NotEmpty(notifs)
	assert.Equal(t, "Your withdrawal of PKR 300 was rejected. insufficient balance", notifs[0].Message)
}

func TestReview_InvalidDecision(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	adminID := seedUser(t, store, "admin")
	_, err := svc.Review(context.Background(), adminID, uuid.New(), "pending", "", "")
	assert.ErrorIs(t, err, domaintx.ErrInvalidStatus)
}

func TestReview_NotFound(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	adminID := seedUser(t, store, "admin")
	_, err := svc.Review(context.Background(), adminID, uuid.New(), "approved", "", "")
	assert.ErrorIs(t, err, domaintx.ErrTransactionNotFound)
}

func TestReview_LastWriteWins(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	firstAdmin := seedUser(t, store, "admin")
	secondAdmin := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")
	tx, err := svc.Submit(ctx, userID, "deposit", 500, "receipt.png")
	require.NoError(err)

	_, err = svc.Review(ctx, firstAdmin, tx.ID, "approved", "", "")
	require.NoError(err)
	updated, err := svc.Review(ctx, secondAdmin, tx.ID, "rejected", "duplicate entry", "")
	require.NoError(err)

	assert.Equal("rejected", updated.Status)
	assert.Equal("duplicate entry", updated.AdminComment)
	assert.Equal(secondAdmin, *updated.ApprovedBy)
}

func TestListForReview_DefaultsToPending(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")
	first, err := svc.Submit(ctx, userID, "deposit", 500, "receipt.png")
	require.NoError(err)
	second, err := svc.Submit(ctx, userID, "withdrawal", 200, "")
	require.NoError(err)

	_, err = svc.Review(ctx, adminID, first.ID, "approved", "", "")
	require.NoError(err)

	pending, err := svc.ListForReview(ctx, "")
	require.NoError(err)
	require.Len(pending, 1)
	assert.Equal(second.ID, pending[0].ID)
	assert.Equal("Ali", pending[0].User.FirstName)

	approved, err := svc.ListForReview(ctx, "approved")
	require.NoError(err)
	require.Len(approved, 1)
	assert.Equal(first.ID, approved[0].ID)
}

func TestSummary_ApprovedOnly(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedUser(t, store, "admin")
	userID := seedUser(t, store, "user")

	deposit, err := svc.Submit(ctx, userID, "deposit", 500, "receipt.png")
	require.NoError(err)
	withdrawal, err := svc.Submit(ctx, userID, "withdrawal", 200, "")
	require.NoError(err)
	_, err = svc.Submit(ctx, userID, "deposit", 10000, "receipt2.png")
	require.NoError(err)

	_, err = svc.Review(ctx, adminID, deposit.ID, "approved", "", "")
	require.NoError(err)
	_, err = svc.Review(ctx, adminID, withdrawal.ID, "approved", "", "")
	require.NoError(err)

	summary, err := svc.Summary(ctx, userID)
	require.NoError(err)
	assert.Equal(1, summary.TotalDeposits)
	assert.Equal(1, summary.TotalWithdrawals)
	assert.Equal(int64(500), summary.TotalDepositAmount)
	assert.Equal(int64(200), summary.TotalWithdrawalAmount)
	assert.Equal(int64(300), summary.NetBalance)
	assert.True(summary.IsProfit)
}

func TestListForOwner_NewestFirst(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	userID := seedUser(t, store, "user")
	first, err := svc.Submit(ctx, userID, "withdrawal", 100, "")
	require.NoError(err)
	second, err := svc.Submit(ctx, userID, "withdrawal", 200, "")
	require.NoError(err)

	txs, err := svc.ListForOwner(ctx, userID)
	require.NoError(err)
	require.Len(txs, 2)
	assert.Equal(t, second.ID, txs[0].ID)
	assert.Equal(t, first.ID, txs[1].ID)
}
