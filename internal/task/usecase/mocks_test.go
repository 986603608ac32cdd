package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"daily-three/internal/task"
	"daily-three/internal/task/policy"
	"daily-three/internal/task/usecase"
	"daily-three/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeStore applies transactions synchronously and pushes a snapshot to its
// subscriber after each commit.
type fakeStore struct {
	mu          sync.Mutex
	tasks       []task.Task
	queryErr    error
	transactErr error
	transacts   [][]task.Mutation
	snaps       chan task.Snapshot
}

func (f *fakeStore) Query(ctx context.Context, ownerID string) ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visibleLocked(), f.queryErr
}

func (f *fakeStore) Subscribe(ctx context.Context, ownerID string) <-chan task.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps = make(chan task.Snapshot, 16)
	f.snaps <- task.Snapshot{Tasks: f.visibleLocked(), Err: f.queryErr}
	return f.snaps
}

func (f *fakeStore) Transact(ctx context.Context, ownerID string, muts []task.Mutation) <-chan error {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(chan error, 1)
	f.transacts = append(f.transacts, muts)
	if f.transactErr != nil {
		result <- f.transactErr
		return result
	}
	for _, m := range muts {
		f.applyLocked(ownerID, m)
	}
	if f.snaps != nil {
		f.snaps <- task.Snapshot{Tasks: f.visibleLocked()}
	}
	result <- nil
	return result
}

func (f *fakeStore) transactCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transacts)
}

func (f *fakeStore) lastTransact() []task.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.transacts) == 0 {
		return nil
	}
	return f.transacts[len(f.transacts)-1]
}

func (f *fakeStore) visibleLocked() []task.Task {
	var out []task.Task
	for _, t := range f.tasks {
		if !t.Deleted {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].Position < out[j].Position
	})
	return out
}

func (f *fakeStore) applyLocked(ownerID string, m task.Mutation) {
	if m.Kind == task.MutationCreate {
		f.tasks = append(f.tasks, task.Task{
			ID: m.TaskID, OwnerID: ownerID, Title: *m.Title, Position: *m.Position,
			CreatedAt: m.At, UpdatedAt: m.At,
		})
		return
	}
	for i := range f.tasks {
		t := &f.tasks[i]
		if t.ID != m.TaskID {
			continue
		}
		if m.Title != nil {
			t.Title = *m.Title
		}
		if m.Position != nil {
			t.Position = *m.Position
		}
		if m.Completed != nil {
			t.Completed = *m.Completed
		}
		if m.CompletedAt != nil {
			at := *m.CompletedAt
			t.CompletedAt = &at
		}
		if m.Deleted {
			t.Deleted = true
		}
		t.UpdatedAt = m.At
	}
}

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	store *fakeStore
	kv    kvstore.Store
	clock *clock
	uc    task.UseCase
}

func newFixture(now time.Time, tasks ...task.Task) fixture {
	return newTickingFixture(now, time.Hour, tasks...)
}

// newTickingFixture is newFixture with a custom watch tick.
func newTickingFixture(now time.Time, tick time.Duration, tasks ...task.Task) fixture {
	store := &fakeStore{tasks: tasks}
	kv := kvstore.NewMemory()
	c := &clock{now: now}
	uc := usecase.New(&mockLogger{}, store, policy.NewGate(kv), usecase.Config{
		DefaultTimezone: "UTC",
		TickInterval:    tick,
		Now:             c.Now,
	})
	return fixture{store: store, kv: kv, clock: c, uc: uc}
}

func open(id string, pos int, created time.Time) task.Task {
	return task.Task{ID: id, OwnerID: "u1", Title: id, Position: pos, CreatedAt: created, UpdatedAt: created}
}

func done(id string, pos int, created time.Time) task.Task {
	t := open(id, pos, created)
	t.Completed = true
	t.CompletedAt = &created
	return t
}
