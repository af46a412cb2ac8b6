// internal/headline/repository.go
//
// sqlx-backed Store.
//
// Context
// -------
// Queries are written once with `?` placeholders and passed through
// db.Rebind, so the same text serves MySQL, SQLite, and Postgres (pgx).
// Paged reads run a COUNT first and skip the row query when the offset is
// already past the end.
//
// Search lower-cases both sides in SQL and matches with LIKE.  On SQLite
// LOWER is the Unicode-aware replacement registered by internal/database.  The term's own
// `%`, `_`, and `!` characters are escaped with `!`, which every supported
// dialect accepts as an ESCAPE character without string-literal quirks.
//
// Notes
// -----
// • SaveAll inserts in chunks inside one transaction; chunking keeps the
//   placeholder count under SQLite's and MySQL's limits.
// • Max line length 100 columns.
package headline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// insertChunk is the number of rows per multi-row INSERT.
const insertChunk = 500

const (
	qCount = `SELECT COUNT(*) FROM schlagzeilen`

	qInsert = `INSERT INTO schlagzeilen (schlagzeile, inland) VALUES (?, ?)`

	qInsertNamed = `INSERT INTO schlagzeilen (schlagzeile, inland) VALUES (:schlagzeile, :inland)`

	qByID = `SELECT id, schlagzeile, inland FROM schlagzeilen WHERE id = ?`

	qPage = `SELECT id, schlagzeile, inland FROM schlagzeilen
              ORDER BY id ASC LIMIT ? OFFSET ?`

	qSearchCount = `SELECT COUNT(*) FROM schlagzeilen
                     WHERE LOWER(schlagzeile) LIKE LOWER(?) ESCAPE '!'`

	qSearchPage = `SELECT id, schlagzeile, inland FROM schlagzeilen
                    WHERE LOWER(schlagzeile) LIKE LOWER(?) ESCAPE '!'
                    ORDER BY id ASC LIMIT ? OFFSET ?`

	qByCategory = `SELECT inland, COUNT(*) AS anzahl FROM schlagzeilen
                    GROUP BY inland ORDER BY inland`
)

// SQLStore implements Store on a *sqlx.DB.
type SQLStore struct {
	db *sqlx.DB
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore wraps db.  The table must already exist; see Migrations.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Count returns the number of stored headlines.
func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, qCount); err != nil {
		return 0, fmt.Errorf("count headlines: %w", err)
	}
	return n, nil
}

// Save inserts h and writes the assigned ID back into it.
func (s *SQLStore) Save(ctx context.Context, h *Headline) error {
	if sqlx.BindType(s.db.DriverName()) == sqlx.DOLLAR {
		// Postgres drivers do not implement LastInsertId.
		q := s.db.Rebind(qInsert + ` RETURNING id`)
		if err := s.db.GetContext(ctx, &h.ID, q, h.Text, h.Domestic); err != nil {
			return fmt.Errorf("insert headline: %w", err)
		}
		return nil
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(qInsert), h.Text, h.Domestic)
	if err != nil {
		return fmt.Errorf("insert headline: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert headline: last insert id: %w", err)
	}
	h.ID = id
	return nil
}

// SaveAll inserts hs in one transaction.  IDs are not written back.
func (s *SQLStore) SaveAll(ctx context.Context, hs []Headline) (err error) {
	if len(hs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert headlines: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for start := 0; start < len(hs); start += insertChunk {
		end := min(start+insertChunk, len(hs))
		if _, err = tx.NamedExecContext(ctx, qInsertNamed, hs[start:end]); err != nil {
			return fmt.Errorf("insert headlines %d-%d: %w", start, end, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("insert headlines: commit: %w", err)
	}
	return nil
}

// FindByID fetches one headline.  A missing row is ok == false, err == nil.
func (s *SQLStore) FindByID(ctx context.Context, id int64) (Headline, bool, error) {
	var h Headline
	err := s.db.GetContext(ctx, &h, s.db.Rebind(qByID), id)
	if errors.Is(err, sql.ErrNoRows) {
		return Headline{}, false, nil
	}
	if err != nil {
		return Headline{}, false, fmt.Errorf("find headline %d: %w", id, err)
	}
	return h, true, nil
}

// FindAll returns one ID-ascending page over all headlines.
func (s *SQLStore) FindAll(ctx context.Context, req PageRequest) (Page, error) {
	total, err := s.Count(ctx)
	if err != nil {
		return Page{}, err
	}
	content, err := s.selectPage(ctx, total, req, qPage)
	if err != nil {
		return Page{}, fmt.Errorf("list headlines: %w", err)
	}
	return newPage(content, req, total), nil
}

// Search returns one ID-ascending page of headlines whose text contains
// term, ignoring case.
func (s *SQLStore) Search(ctx context.Context, term string, req PageRequest) (Page, error) {
	pattern := likePattern(term)

	var total int64
	if err := s.db.GetContext(ctx, &total, s.db.Rebind(qSearchCount), pattern); err != nil {
		return Page{}, fmt.Errorf("search headlines: count: %w", err)
	}
	content, err := s.selectPage(ctx, total, req, qSearchPage, pattern)
	if err != nil {
		return Page{}, fmt.Errorf("search headlines: %w", err)
	}
	return newPage(content, req, total), nil
}

// CountByCategory groups headlines by the inland flag.
func (s *SQLStore) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows := make([]CategoryCount, 0, 2)
	if err := s.db.SelectContext(ctx, &rows, qByCategory); err != nil {
		return nil, fmt.Errorf("count headlines by category: %w", err)
	}
	return rows, nil
}

// selectPage runs q with args followed by LIMIT and OFFSET, unless the
// offset already lies past total.
func (s *SQLStore) selectPage(ctx context.Context, total int64, req PageRequest, q string,
	args ...any) ([]Headline, error) {

	if int64(req.Offset()) >= total {
		return []Headline{}, nil
	}
	content := make([]Headline, 0, req.Size)
	args = append(args, req.Size, req.Offset())
	if err := s.db.SelectContext(ctx, &content, s.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return content, nil
}

// likeEscaper escapes LIKE wildcards with '!' (see ESCAPE '!' above).
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern builds the escaped substring pattern for term.  Case folding
// happens in SQL, on both sides of the LIKE.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
