package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// jobInserter lazily builds the insert-only River clients. They hold no
// workers and are safe to share between a PgSQL and its transactions.
type jobInserter struct {
	mu     sync.Mutex
	db     *river.Client[*sql.Tx]
	dbFrom *sql.DB
	tx     *river.Client[*sql.Tx]
}

func (j *jobInserter) forDB(db *sql.DB) (*river.Client[*sql.Tx], error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db != nil && j.dbFrom == db {
		return j.db, nil
	}
	c, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}
	j.db, j.dbFrom = c, db

	return c, nil
}

func (j *jobInserter) forTx() (*river.Client[*sql.Tx], error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.tx != nil {
		return j.tx, nil
	}
	c, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}
	j.tx = c

	return c, nil
}

// AddJob enqueues a River job and reports whether a new row was inserted. It
// returns false when a unique job with the same key already exists.
//
// Inside a transaction the job is inserted with InsertTx, so it only becomes
// visible to workers once the surrounding transaction commits.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	jobs := p.jobs
	if jobs == nil {
		jobs = &jobInserter{}
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		var c *river.Client[*sql.Tx]
		if c, err = jobs.forTx(); err != nil {
			return false, err
		}
		res, err = c.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		var c *river.Client[*sql.Tx]
		if c, err = jobs.forDB(db); err != nil {
			return false, err
		}
		res, err = c.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
