package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/repositories"
)

// SQLiteEntryRepository implements the EntryRepository interface
type SQLiteEntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(config *RepositoryConfig) repositories.EntryRepository {
	return &SQLiteEntryRepository{db: config.DB}
}

const entryColumns = `e.id, e.ts, e.title, e.project_id, IFNULL(p.name, ''), e.work_type,
	e.tags, e.paths, e.duration_hours, e.notes_md, e.created_at`

// Create creates a new entry
func (r *SQLiteEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (ts, title, project_id, work_type, tags, paths, duration_hours, notes_md, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		encodeTime(entry.Timestamp),
		entry.Title,
		entry.ProjectID,
		entry.WorkType,
		encodeList(entry.Tags, tagSep),
		encodeList(entry.LinkedPaths, pathSep),
		entry.DurationHours,
		entry.Notes,
		encodeTime(entry.CreatedAt),
	)

	if err != nil {
		if IsForeignKeyError(err) && entry.ProjectID != nil {
			return fmt.Errorf("project %d: %w", *entry.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	entry.ID = id

	return nil
}

// GetByID retrieves an entry by ID with its project name resolved
func (r *SQLiteEntryRepository) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM entries e
		LEFT JOIN projects p ON e.project_id = p.id
		WHERE e.id = ?
	`, entryColumns), id)

	entry, err := scanEntry(row)
	if err != nil {
		if IsNoRowsError(err) {
			return nil, fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}

// Query retrieves entries matching the filter, ordered by timestamp
// descending. Date bounds are inclusive on both ends at day granularity;
// the tag filter is a case-insensitive substring match over the stored tag
// list (SQLite LIKE is case-insensitive for ASCII).
func (r *SQLiteEntryRepository) Query(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error) {
	var (
		conditions []string
		params     []any
	)

	if filter != nil {
		if filter.Start != nil {
			conditions = append(conditions, "DATE(e.ts) >= DATE(?)")
			params = append(params, filter.Start.Format("2006-01-02"))
		}
		if filter.End != nil {
			conditions = append(conditions, "DATE(e.ts) <= DATE(?)")
			params = append(params, filter.End.Format("2006-01-02"))
		}
		if filter.ProjectID != nil {
			conditions = append(conditions, "e.project_id = ?")
			params = append(params, *filter.ProjectID)
		}
		if filter.Tag != "" {
			conditions = append(conditions, "e.tags LIKE ?")
			params = append(params, "%"+filter.Tag+"%")
		}
		if filter.Text != "" {
			conditions = append(conditions, "(e.title LIKE ? OR e.notes_md LIKE ? OR e.paths LIKE ?)")
			like := "%" + filter.Text + "%"
			params = append(params, like, like, like)
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM entries e
		LEFT JOIN projects p ON e.project_id = p.id
		%s
		ORDER BY e.ts DESC
	`, entryColumns, where)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	if entries == nil {
		entries = []models.Entry{}
	}

	return entries, nil
}

// Update updates an entry's mutable fields
func (r *SQLiteEntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE entries
		SET ts = ?, title = ?, project_id = ?, work_type = ?, tags = ?, paths = ?, duration_hours = ?, notes_md = ?
		WHERE id = ?
	`,
		encodeTime(entry.Timestamp),
		entry.Title,
		entry.ProjectID,
		entry.WorkType,
		encodeList(entry.Tags, tagSep),
		encodeList(entry.LinkedPaths, pathSep),
		entry.DurationHours,
		entry.Notes,
		entry.ID,
	)

	if err != nil {
		if IsForeignKeyError(err) && entry.ProjectID != nil {
			return fmt.Errorf("project %d: %w", *entry.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("update entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", entry.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an entry; attachment rows cascade
func (r *SQLiteEntryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// RecentPaths returns the most recently used distinct workspace paths
func (r *SQLiteEntryRepository) RecentPaths(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT paths
		FROM entries
		WHERE paths IS NOT NULL AND TRIM(paths) != ''
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent paths: %w", err)
	}
	defer rows.Close()

	var (
		paths []string
		seen  = map[string]bool{}
	)
	for rows.Next() {
		var stored string
		if err := rows.Scan(&stored); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		// A row may hold several linked paths; dedupe across rows.
		for _, p := range decodeList(stored, pathSep) {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate paths: %w", err)
	}

	if len(paths) > limit {
		paths = paths[:limit]
	}
	if paths == nil {
		paths = []string{}
	}

	return paths, nil
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var (
		entry     models.Entry
		ts        string
		createdAt string
		workType  sql.NullString
		tags      sql.NullString
		paths     sql.NullString
		notes     sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&ts,
		&entry.Title,
		&entry.ProjectID,
		&entry.ProjectName,
		&workType,
		&tags,
		&paths,
		&entry.DurationHours,
		&notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if entry.Timestamp, err = decodeTime(ts); err != nil {
		return nil, fmt.Errorf("parse ts: %w", err)
	}
	if entry.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	entry.WorkType = workType.String
	entry.Tags = decodeList(tags.String, tagSep)
	entry.LinkedPaths = decodeList(paths.String, pathSep)
	entry.Notes = notes.String

	return &entry, nil
}
