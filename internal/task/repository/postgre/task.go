package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"daily-three/internal/task"
	repo "daily-three/internal/task/repository"
)

const taskColumns = `id, owner_id, title, position, completed, completed_at, created_at, updated_at, deleted`

// ListTasks returns the owner's tasks, incomplete first, each partition by position.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := r.rebind(fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var rec taskRecord
		if err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.Title, &rec.Position, &rec.Completed,
			&rec.CompletedAt, &rec.CreatedAt, &rec.UpdatedAt, &rec.Deleted,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, rec.toDomain())
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Transact applies the batch inside one SQL transaction. An update that
// matches no live task of the owner rolls back the whole batch, and so does
// a create or reopen that goes over task.MaxActiveTasks.
func (r *implRepository) Transact(ctx context.Context, opt repo.TransactOptions) error {
	if len(opt.Mutations) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Transact"), err)
		return repo.ErrFailedToTransact
	}
	defer tx.Rollback()

	for _, m := range opt.Mutations {
		switch m.Kind {
		case task.MutationCreate:
			err = r.insertTask(ctx, tx, opt.OwnerID, m)
		case task.MutationUpdate:
			err = r.updateTask(ctx, tx, opt.OwnerID, m)
		default:
			err = fmt.Errorf("%w: unknown kind %d", repo.ErrInvalidMutation, m.Kind)
		}
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Transact"), err)
		return repo.ErrFailedToTransact
	}
	return nil
}

func (r *implRepository) insertTask(ctx context.Context, tx *sql.Tx, ownerID string, m task.Mutation) error {
	if m.TaskID == "" || m.Title == nil || m.Position == nil {
		return fmt.Errorf("%w: create needs id, title and position", repo.ErrInvalidMutation)
	}

	// The new task always lands at the end of the incomplete partition as
	// seen inside this transaction.
	active, err := r.countActive(ctx, tx, ownerID)
	if err != nil {
		return err
	}
	if active >= task.MaxActiveTasks {
		return repo.ErrActiveLimit
	}

	query := r.rebind(`
		INSERT INTO tasks (id, owner_id, title, position, completed, completed_at, created_at, updated_at, deleted)
		VALUES (?, ?, ?, ?, FALSE, NULL, ?, ?, FALSE)`)
	at := toMillis(m.At)
	if _, err := tx.ExecContext(ctx, query, m.TaskID, ownerID, *m.Title, active, at, at); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("insertTask"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) updateTask(ctx context.Context, tx *sql.Tx, ownerID string, m task.Mutation) error {
	sets, args := r.buildUpdateSet(m)
	query := r.rebind(fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = ? AND owner_id = ? AND deleted = FALSE`, sets,
	))
	args = append(args, m.TaskID, ownerID)

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("updateTask"), err)
		return repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("updateTask"), err)
		return repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", repo.ErrTargetGone, m.TaskID)
	}

	if m.Completed != nil && !*m.Completed {
		active, err := r.countActive(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		if active > task.MaxActiveTasks {
			return repo.ErrActiveLimit
		}
	}
	return nil
}

// countActive counts the owner's live incomplete tasks within tx.
func (r *implRepository) countActive(ctx context.Context, tx *sql.Tx, ownerID string) (int, error) {
	query := r.rebind(`SELECT COUNT(*) FROM tasks WHERE owner_id = ? AND deleted = FALSE AND completed = FALSE`)

	var n int
	if err := tx.QueryRowContext(ctx, query, ownerID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("countActive"), err)
		return 0, repo.ErrFailedToTransact
	}
	return n, nil
}
