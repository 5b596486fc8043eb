package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/internal/fixtures/memory"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/dto"
	notificationsvc "github.com/hamzaimran/bitpro/pkg/service/notification"
	usersvc "github.com/hamzaimran/bitpro/pkg/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*usersvc.Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usersvc.New(store, notificationsvc.New(store, logger), logger), store
}

func seedAdmin(t *testing.T, store *memory.Store) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := store.Users().Create(context.Background(), &dto.UserCreate{
		ID:        id,
		FirstName: "Admin",
		LastName:  "One",
		Email:     id.String() + "@example.com",
		Phone:     "03000000000",
		Easypaisa: "03000000000",
		Role:      "admin",
		Password:  "x",
		IsActive:  true,
	})
	require.NoError(t, err)
	return id
}

func TestRegister(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	adminID := seedAdmin(t, store)

	u, err := svc.Register(ctx, "Hamza", "Imran", "hamza@example.com",
		"03001234567", "03001234567", "password123")
	require.NoError(err)
	assert.Equal("user", u.Role)
	assert.True(u.IsActive)
	assert.NotEmpty(u.HashedPassword)

	notifs, err := store.Notifications().ListRecent(ctx, adminID, 10)
	require.NoError(err)
	require.Len(notifs, 1)
	assert.Equal("new_user", notifs[0].Type)
	assert.Equal("New user registered: Hamza Imran (hamza@example.com)", notifs[0].Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Hamza", "Imran", "hamza@example.com",
		"03001234567", "03001234567", "password123")
	require.NoError(t, err)

	u, err := svc.Register(ctx, "Other", "Person", "hamza@example.com",
		"03007654321", "03007654321", "password456")
	assert.ErrorIs(t, err, domainuser.ErrEmailAlreadyExists)
	assert.Nil(t, u)
	assert.Equal(t, 0, store.NotificationCount())
}

func TestRegister_InvalidInput(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	_, err := svc.Register(context.Background(), "", "Imran", "hamza@example.com",
		"03001234567", "03001234567", "password123")
	assert.ErrorIs(t, err, domainuser.ErrMissingFields)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	u, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainuser.ErrUserNotFound)
	assert.Nil(t, u)
}

func TestToggleActive(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Hamza", "Imran", "hamza@example.com",
		"03001234567", "03001234567", "password123")
	require.NoError(err)

	active, err := svc.ToggleActive(ctx, u.ID)
	require.NoError(err)
	assert.False(active)

	active, err = svc.ToggleActive(ctx, u.ID)
	require.NoError(err)
	assert.True(active)
}

func TestToggleActive_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	_, err := svc.ToggleActive(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainuser.ErrUserNotFound)
}

func TestListWithActivity_CountsAllStatuses(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Hamza", "Imran", "hamza@example.com",
		"03001234567", "03001234567", "password123")
	require.NoError(err)

	// Pending entries count here, unlike the approved-only summary.
	err = store.Transactions().Create(ctx, &dto.TransactionCreate{
		ID: uuid.New(), UserID: u.ID, Type: "deposit", Amount: 500,
		Screenshot: "receipt.png", Status: "pending",
	})
	require.NoError(err)
	err = store.Transactions().Create(ctx, &dto.TransactionCreate{
		ID: uuid.New(), UserID: u.ID, Type: "withdrawal", Amount: 200,
		Status: "rejected",
	})
	require.NoError(err)

	rows, err := svc.ListWithActivity(ctx)
	require.NoError(err)
	require.Len(rows, 1)
	assert.Equal(int64(1), rows[0].Deposits)
	assert.Equal(int64(1), rows[0].Withdrawals)
	assert.Equal(int64(500), rows[0].DepositsAmount)
	assert.Equal(int64(200), rows[0].WithdrawalsAmount)
}

func TestGetDetail(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Hamza", "Imran", "hamza@example.com",
		"03001234567", "03001234567", "password123")
	require.NoError(err)

	err = store.Transactions().Create(ctx, &dto.TransactionCreate{
		ID: uuid.New(), UserID: u.ID, Type: "deposit", Amount: 500,
		Screenshot: "receipt.png", Status: "approved",
	})
	require.NoError(err)
	err = store.Transactions().Create(ctx, &dto.TransactionCreate{
		ID: uuid.New(), UserID: u.ID, Type: "deposit", Amount: 300,
		Screenshot: "receipt2.png", Status: "pending",
	})
	require.NoError(err)

	detail, err := svc.GetDetail(ctx, u.ID)
	require.NoError(err)
	assert.Equal(u.ID, detail.User.ID)
	assert.Len(detail.Transactions, 2)
	assert.Equal(1, detail.Summary.TotalDeposits)
	assert.Equal(int64(500), detail.Summary.TotalDepositAmount)
}
