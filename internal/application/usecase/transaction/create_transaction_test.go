package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	for _, transaction := range transactions {
		if err := r.Create(ctx, transaction); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) SumAmountByType(_ context.Context, userID uuid.UUID, transactionType entity.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, transaction := range r.transactions {
		if transaction.UserID != userID || transaction.Type != transactionType {
			continue
		}
		if transaction.Date.Before(from) || transaction.Date.After(to) {
			continue
		}
		total = total.Add(transaction.Amount)
	}
	return total, nil
}

type fakeFinanceGoalRepo struct {
	adapter.FinanceGoalRepository
	goals map[uuid.UUID]*entity.FinanceGoal
}

func newFakeFinanceGoalRepo() *fakeFinanceGoalRepo {
	return &fakeFinanceGoalRepo{goals: make(map[uuid.UUID]*entity.FinanceGoal)}
}

func (r *fakeFinanceGoalRepo) Create(_ context.Context, goal *entity.FinanceGoal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeFinanceGoalRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.FinanceGoal, error) {
	var out []*entity.FinanceGoal
	for _, goal := range r.goals {
		if goal.UserID == userID && goal.IsActive {
			copied := *goal
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeFinanceGoalRepo) Update(_ context.Context, goal *entity.FinanceGoal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

type fakeUserRepo struct {
	adapter.UserRepository
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

type fakeNotificationQueue struct {
	adapter.NotificationQueueRepository
	jobs []*entity.NotificationJob
}

func (r *fakeNotificationQueue) Create(_ context.Context, job *entity.NotificationJob) error {
	r.jobs = append(r.jobs, job)
	return nil
}

type fakeCache struct {
	invalidated map[adapter.CacheGroup]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{invalidated: make(map[adapter.CacheGroup]int)}
}

func (c *fakeCache) Invalidate(_ context.Context, _ uuid.UUID, groups ...adapter.CacheGroup) error {
	for _, group := range groups {
		c.invalidated[group]++
	}
	return nil
}

func (c *fakeCache) Version(_ context.Context, _ uuid.UUID, _ adapter.CacheGroup) (int64, error) {
	return 0, nil
}

type stubCategoryRepo struct {
	adapter.CategoryRepository
}

type transactionTestEnv struct {
	transactions *fakeTransactionRepo
	financeGoals *fakeFinanceGoalRepo
	queue        *fakeNotificationQueue
	cache        *fakeCache
	user         *entity.User
	create       *CreateTransactionUseCase
}

func newTransactionTestEnv() *transactionTestEnv {
	transactions := newFakeTransactionRepo()
	financeGoals := newFakeFinanceGoalRepo()
	queue := &fakeNotificationQueue{}
	cache := newFakeCache()

	user := entity.NewUser("ana@example.com", "Ana", "hash")
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}

	orchestrator := sync.NewOrchestrator(nil, financeGoals, transactions, nil)
	notifier := NewMilestoneNotifier(users, queue)

	return &transactionTestEnv{
		transactions: transactions,
		financeGoals: financeGoals,
		queue:        queue,
		cache:        cache,
		user:         user,
		create:       NewCreateTransactionUseCase(transactions, stubCategoryRepo{}, orchestrator, notifier, cache),
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	env := newTransactionTestEnv()
	now := time.Now().UTC()

	cases := []struct {
		name  string
		input CreateTransactionInput
		code  domainerror.TransactionErrorCode
	}{
		{
			name: "unknown type",
			input: CreateTransactionInput{
				UserID: env.user.ID, Type: "transfer", Description: "x",
				Amount: decimal.NewFromInt(10), Date: now,
			},
			code: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name: "zero amount",
			input: CreateTransactionInput{
				UserID: env.user.ID, Type: entity.TransactionTypeExpense, Description: "x",
				Amount: decimal.Zero, Date: now,
			},
			code: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "missing description",
			input: CreateTransactionInput{
				UserID: env.user.ID, Type: entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(10), Date: now,
			},
			code: domainerror.ErrCodeMissingTransactionFields,
		},
		{
			name: "zero date",
			input: CreateTransactionInput{
				UserID: env.user.ID, Type: entity.TransactionTypeExpense, Description: "x",
				Amount: decimal.NewFromInt(10),
			},
			code: domainerror.ErrCodeInvalidTransactionDate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.create.Execute(context.Background(), tc.input)
			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) || txnErr.Code != tc.code {
				t.Errorf("unexpected error %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestCreateTransactionQueuesMilestoneNotification(t *testing.T) {
	env := newTransactionTestEnv()
	ctx := context.Background()

	limit := entity.NewFinanceGoal(env.user.ID, "Monthly budget", entity.FinanceGoalTypeExpenseLimit, decimal.NewFromInt(5000), nil)
	if err := env.financeGoals.Create(ctx, limit); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}

	output, err := env.create.Execute(ctx, CreateTransactionInput{
		UserID:      env.user.ID,
		Type:        entity.TransactionTypeExpense,
		Description: "Groceries",
		Amount:      decimal.NewFromInt(4200),
		Date:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if len(output.Milestones) != 1 {
		t.Fatalf("milestones = %d, want 1 at 84%% of the limit", len(output.Milestones))
	}
	if len(env.queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1", len(env.queue.jobs))
	}

	job := env.queue.jobs[0]
	if job.TemplateType != entity.TemplateMilestone {
		t.Errorf("template = %q, want milestone", job.TemplateType)
	}
	if job.RecipientEmail != env.user.Email {
		t.Errorf("recipient = %q, want %q", job.RecipientEmail, env.user.Email)
	}
	if job.TemplateData["variant"] != "destructive" {
		t.Errorf("variant = %v, want destructive for an expense limit", job.TemplateData["variant"])
	}

	if env.cache.invalidated[adapter.CacheGroupTransactions] == 0 {
		t.Error("transactions cache group was not invalidated")
	}
	if env.cache.invalidated[adapter.CacheGroupFinanceGoals] == 0 {
		t.Error("finance-goals cache group was not invalidated")
	}
}

func TestCreateTransactionRespectsMilestoneOptOut(t *testing.T) {
	env := newTransactionTestEnv()
	env.user.MilestoneAlerts = false
	ctx := context.Background()

	limit := entity.NewFinanceGoal(env.user.ID, "Monthly budget", entity.FinanceGoalTypeExpenseLimit, decimal.NewFromInt(1000), nil)
	if err := env.financeGoals.Create(ctx, limit); err != nil {
		t.Fatalf("seed finance goal: %v", err)
	}

	output, err := env.create.Execute(ctx, CreateTransactionInput{
		UserID:      env.user.ID,
		Type:        entity.TransactionTypeExpense,
		Description: "Rent",
		Amount:      decimal.NewFromInt(900),
		Date:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// The event still surfaces to the caller; only the queued email is skipped.
	if len(output.Milestones) != 1 {
		t.Errorf("milestones = %d, want 1", len(output.Milestones))
	}
	if len(env.queue.jobs) != 0 {
		t.Errorf("queued jobs = %d, want 0 for an opted-out user", len(env.queue.jobs))
	}
}

func TestImportTransactionsExpandsInstallments(t *testing.T) {
	env := newTransactionTestEnv()
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{env.user.ID: env.user}}
	orchestrator := sync.NewOrchestrator(nil, env.financeGoals, env.transactions, nil)
	importer := NewImportTransactionsUseCase(env.transactions, stubCategoryRepo{}, orchestrator, NewMilestoneNotifier(users, env.queue), env.cache)

	date := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	output, err := importer.Execute(context.Background(), ImportTransactionsInput{
		UserID: env.user.ID,
		Items: []ImportTransactionItem{
			{
				Type:          entity.TransactionTypeExpense,
				Description:   "Notebook",
				Amount:        decimal.NewFromInt(1000),
				PaymentMethod: entity.PaymentMethodCreditCard,
				Date:          date,
				Installments:  3,
			},
		},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if len(output.Created) != 3 {
		t.Fatalf("created = %d, want 3 parcels", len(output.Created))
	}

	total := decimal.Zero
	for i, parcel := range output.Created {
		total = total.Add(parcel.Amount)
		if parcel.InstallmentCount != 3 || parcel.InstallmentNumber != i+1 {
			t.Errorf("parcel %d numbering = %d/%d", i, parcel.InstallmentNumber, parcel.InstallmentCount)
		}
		wantMonth := date.AddDate(0, i, 0).Month()
		if parcel.Date.Month() != wantMonth {
			t.Errorf("parcel %d month = %v, want %v", i, parcel.Date.Month(), wantMonth)
		}
		if parcel.Source != entity.SourceIntegration {
			t.Errorf("parcel %d source = %q, want integration default", i, parcel.Source)
		}
	}
	if !total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("parcel total = %s, want the original 1000", total)
	}
}

func TestImportTransactionsRejectsEmptyPayload(t *testing.T) {
	env := newTransactionTestEnv()
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{env.user.ID: env.user}}
	orchestrator := sync.NewOrchestrator(nil, env.financeGoals, env.transactions, nil)
	importer := NewImportTransactionsUseCase(env.transactions, stubCategoryRepo{}, orchestrator, NewMilestoneNotifier(users, env.queue), env.cache)

	_, err := importer.Execute(context.Background(), ImportTransactionsInput{UserID: env.user.ID})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeEmptyImport {
		t.Errorf("unexpected error %v, want empty-import rejection", err)
	}
}
