// Package memory provides in-memory repository implementations backing
// service and endpoint tests. The Store implements the unit-of-work
// contract without real transactionality; tests exercise workflow
// semantics, not rollback.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository"
	notificationrepo "github.com/hamzaimran/bitpro/pkg/repository/notification"
	transactionrepo "github.com/hamzaimran/bitpro/pkg/repository/transaction"
	userrepo "github.com/hamzaimran/bitpro/pkg/repository/user"
)

// ErrNotificationWrite is returned by the notification repository when
// FailNotifications is set, to exercise fire-and-forget fan-out.
var ErrNotificationWrite = errors.New("notification write refused")

type userRecord struct {
	dto.UserRead
	seq int
}

type transactionRecord struct {
	dto.TransactionRead
	seq int
}

type notificationRecord struct {
	dto.NotificationRead
	seq int
}

// Store holds all records behind one mutex.
type Store struct {
	mu            sync.RWMutex
	seq           int
	users         map[uuid.UUID]*userRecord
	transactions  map[uuid.UUID]*transactionRecord
	notifications map[uuid.UUID]*notificationRecord

	// FailNotifications makes every notification write fail.
	FailNotifications bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]*userRecord),
		transactions:  make(map[uuid.UUID]*transactionRecord),
		notifications: make(map[uuid.UUID]*notificationRecord),
	}
}

// Do runs fn against the same store. There is no rollback.
func (s *Store) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(s)
}

func (s *Store) Users() userrepo.Repository                 { return &userRepo{s} }
func (s *Store) Transactions() transactionrepo.Repository   { return &transactionRepo{s} }
func (s *Store) Notifications() notificationrepo.Repository { return &notificationRepo{s} }

// NotificationCount returns the total number of stored notifications.
func (s *Store) NotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notifications)
}

// TransactionCount returns the total number of stored ledger entries.
func (s *Store) TransactionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, create *dto.UserCreate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq++
	r.s.users[create.ID] = &userRecord{
		UserRead: dto.UserRead{
			ID:             create.ID,
			FirstName:      create.FirstName,
			LastName:       create.LastName,
			Email:          create.Email,
			Phone:          create.Phone,
			Easypaisa:      create.Easypaisa,
			Role:           create.Role,
			HashedPassword: create.Password,
			IsActive:       create.IsActive,
		},
		seq: r.s.seq,
	}
	return nil
}

func (r *userRepo) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	u := rec.UserRead
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.users {
		if rec.Email == email {
			u := rec.UserRead
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *userRepo) ListByRole(ctx context.Context, role string) ([]*dto.UserRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var recs []*userRecord
	for _, rec := range r.s.users {
		if rec.Role == role {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	result := make([]*dto.UserRead, 0, len(recs))
	for _, rec := range recs {
		u := rec.UserRead
		result = append(result, &u)
	}
	return result, nil
}

func (r *userRepo) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.users[id]
	if !ok {
		return nil
	}
	if update.Password != nil {
		rec.HashedPassword = *update.Password
	}
	if update.IsActive != nil {
		rec.IsActive = *update.IsActive
	}
	return nil
}

func (r *userRepo) ListWithActivity(ctx context.Context) ([]*dto.UserActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var recs []*userRecord
	for _, rec := range r.s.users {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	result := make([]*dto.UserActivity, 0, len(recs))
	for _, rec := range recs {
		activity := &dto.UserActivity{
			ID:        rec.ID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Role:      rec.Role,
			IsActive:  rec.IsActive,
		}
		for _, t := range r.s.transactions {
			if t.UserID != rec.ID {
				continue
			}
			switch t.Type {
			case "deposit":
				activity.Deposits++
				activity.DepositsAmount += t.Amount
			case "withdrawal":
				activity.Withdrawals++
				activity.WithdrawalsAmount += t.Amount
			}
		}
		result = append(result, activity)
	}
	return result, nil
}

type transactionRepo struct{ s *Store }

func (r *transactionRepo) Create(ctx context.Context, create *dto.TransactionCreate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq++
	r.s.transactions[create.ID] = &transactionRecord{
		TransactionRead: dto.TransactionRead{
			ID:         create.ID,
			UserID:     create.UserID,
			Type:       create.Type,
			Amount:     create.Amount,
			Screenshot: create.Screenshot,
			Status:     create.Status,
			CreatedAt:  create.CreatedAt,
		},
		seq: r.s.seq,
	}
	return nil
}

func (r *transactionRepo) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	t := rec.TransactionRead
	return &t, nil
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var recs []*transactionRecord
	for _, rec := range r.s.transactions {
		if rec.UserID == userID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	result := make([]*dto.TransactionRead, 0, len(recs))
	for _, rec := range recs {
		t := rec.TransactionRead
		result = append(result, &t)
	}
	return result, nil
}

func (r *transactionRepo) ListByStatusWithUser(ctx context.Context, status string) ([]*dto.TransactionWithUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var recs []*transactionRecord
	for _, rec := range r.s.transactions {
		if rec.Status == status {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	result := make([]*dto.TransactionWithUser, 0, len(recs))
	for _, rec := range recs {
		row := &dto.TransactionWithUser{TransactionRead: rec.TransactionRead}
		if u, ok := r.s.users[rec.UserID]; ok {
			row.User = dto.TransactionSubmitter{
				ID:        u.ID,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
				Phone:     u.Phone,
			}
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *transactionRepo) Review(ctx context.Context, id uuid.UUID, review *dto.TransactionReview) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.transactions[id]
	if !ok {
		return nil
	}
	rec.Status = review.Status
	rec.AdminComment = review.Comment
	approvedAt := review.ApprovedAt
	approvedBy := review.ApprovedBy
	rec.ApprovedAt = &approvedAt
	rec.ApprovedBy = &approvedBy
	if review.Screenshot != "" {
		rec.Screenshot = review.Screenshot
	}
	return nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(ctx context.Context, create *dto.NotificationCreate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailNotifications {
		return ErrNotificationWrite
	}
	r.s.seq++
	r.s.notifications[create.ID] = &notificationRecord{
		NotificationRead: dto.NotificationRead{
			ID:        create.ID,
			Recipient: create.Recipient,
			Type:      create.Type,
			RefID:     create.RefID,
			Message:   create.Message,
			CreatedAt: create.CreatedAt,
		},
		seq: r.s.seq,
	}
	return nil
}

func (r *notificationRepo) Get(ctx context.Context, id uuid.UUID) (*dto.NotificationRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.notifications[id]
	if !ok {
		return nil, nil
	}
	n := rec.NotificationRead
	return &n, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rec, ok := r.s.notifications[id]; ok {
		rec.Read = true
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, recipient uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.notifications {
		if rec.Recipient == recipient {
			rec.Read = true
		}
	}
	return nil
}

func (r *notificationRepo) MarkTypeRead(ctx context.Context, recipient uuid.UUID, kind string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.notifications {
		if rec.Recipient == recipient && rec.Type == kind {
			rec.Read = true
		}
	}
	return nil
}

func (r *notificationRepo) UnreadCount(ctx context.Context, recipient uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, rec := range r.s.notifications {
		if rec.Recipient == recipient && !rec.Read {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepo) UnreadCountByType(ctx context.Context, recipient uuid.UUID) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byType := make(map[string]int64)
	for _, rec := range r.s.notifications {
		if rec.Recipient == recipient && !rec.Read {
			byType[rec.Type]++
		}
	}
	return byType, nil
}

func (r *notificationRepo) ListRecent(ctx context.Context, recipient uuid.UUID, limit int) ([]*dto.NotificationRead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var recs []*notificationRecord
	for _, rec := range r.s.notifications {
		if rec.Recipient == recipient {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	if len(recs) > limit {
		recs = recs[:limit]
	}
	result := make([]*dto.NotificationRead, 0, len(recs))
	for _, rec := range recs {
		n := rec.NotificationRead
		result = append(result, &n)
	}
	return result, nil
}
