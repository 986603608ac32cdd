package live

import (
	"context"
	"sync"

	"daily-three/internal/task"
	"daily-three/internal/task/repository"
	"daily-three/pkg/log"
)

// Store is the reactive façade over the task repository. Transactions of one
// owner run on a single worker in submission order. Every commit is followed
// by a fresh snapshot pushed to that owner's subscribers.
type Store struct {
	repo repository.TaskRepository
	l    log.Logger

	mu     sync.Mutex
	owners map[string]*owner
}

type owner struct {
	jobs    []job
	running bool
	version int64
	subs    map[*subscriber]struct{}
}

type job struct {
	ctx    context.Context
	muts   []task.Mutation
	result chan error
}

type subscriber struct {
	ch   chan task.Snapshot
	seen int64
}

// New creates a Store on top of repo.
func New(repo repository.TaskRepository, l log.Logger) *Store {
	if repo == nil {
		panic("task/live: repository is required")
	}
	return &Store{
		repo:   repo,
		l:      l,
		owners: make(map[string]*owner),
	}
}

var _ task.Store = (*Store)(nil)

// Query reads the owner's current tasks without subscribing.
func (s *Store) Query(ctx context.Context, ownerID string) ([]task.Task, error) {
	return s.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: ownerID})
}

// Transact enqueues muts for ownerID and returns immediately. The channel
// receives the commit result once. A submitted batch runs to completion even
// if ctx is cancelled afterwards.
func (s *Store) Transact(ctx context.Context, ownerID string, muts []task.Mutation) <-chan error {
	result := make(chan error, 1)

	s.mu.Lock()
	o := s.ownerLocked(ownerID)
	o.jobs = append(o.jobs, job{ctx: context.WithoutCancel(ctx), muts: muts, result: result})
	if !o.running {
		o.running = true
		go s.work(ownerID, o)
	}
	s.mu.Unlock()

	return result
}

// Subscribe delivers the current snapshot followed by one snapshot per commit.
// Only the latest undelivered snapshot is kept. The channel closes when ctx ends.
func (s *Store) Subscribe(ctx context.Context, ownerID string) <-chan task.Snapshot {
	sub := &subscriber{ch: make(chan task.Snapshot, 1), seen: -1}

	s.mu.Lock()
	o := s.ownerLocked(ownerID)
	o.subs[sub] = struct{}{}
	version := o.version
	s.mu.Unlock()

	tasks, err := s.Query(ctx, ownerID)
	s.mu.Lock()
	if _, ok := o.subs[sub]; ok && sub.seen < version {
		sub.offer(task.Snapshot{Tasks: tasks, Err: err})
		sub.seen = version
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(o.subs, sub)
		close(sub.ch)
		s.releaseLocked(ownerID, o)
		s.mu.Unlock()
	}()

	return sub.ch
}

func (s *Store) work(ownerID string, o *owner) {
	for {
		s.mu.Lock()
		if len(o.jobs) == 0 {
			o.running = false
			s.releaseLocked(ownerID, o)
			s.mu.Unlock()
			return
		}
		j := o.jobs[0]
		o.jobs = o.jobs[1:]
		s.mu.Unlock()

		err := s.repo.Transact(j.ctx, repository.TransactOptions{OwnerID: ownerID, Mutations: j.muts})
		if err != nil {
			s.l.Warnf(j.ctx, "task/live.work Transact owner=%s: %v", ownerID, err)
		} else {
			s.publish(j.ctx, ownerID, o)
		}
		j.result <- err
	}
}

func (s *Store) publish(ctx context.Context, ownerID string, o *owner) {
	s.mu.Lock()
	o.version++
	version := o.version
	empty := len(o.subs) == 0
	s.mu.Unlock()
	if empty {
		return
	}

	tasks, err := s.Query(ctx, ownerID)
	if err != nil {
		s.l.Errorf(ctx, "task/live.publish Query owner=%s: %v", ownerID, err)
	}
	snap := task.Snapshot{Tasks: tasks, Err: err}

	s.mu.Lock()
	for sub := range o.subs {
		if sub.seen < version {
			sub.offer(snap)
			sub.seen = version
		}
	}
	s.mu.Unlock()
}

func (s *Store) ownerLocked(ownerID string) *owner {
	o, ok := s.owners[ownerID]
	if !ok {
		o = &owner{subs: make(map[*subscriber]struct{})}
		s.owners[ownerID] = o
	}
	return o
}

// releaseLocked forgets an owner with no worker and no subscribers.
func (s *Store) releaseLocked(ownerID string, o *owner) {
	if o.running || len(o.jobs) > 0 || len(o.subs) > 0 {
		return
	}
	if s.owners[ownerID] == o {
		delete(s.owners, ownerID)
	}
}

// offer replaces any pending snapshot with snap. Callers hold Store.mu.
func (sub *subscriber) offer(snap task.Snapshot) {
	select {
	case sub.ch <- snap:
		return
	default:
	}
	select {
	case <-sub.ch:
	default:
	}
	select {
	case sub.ch <- snap:
	default:
	}
}
