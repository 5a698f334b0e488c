package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"slate/internal/config"
	"slate/internal/project"
)

// ErrNotIndexed indicates no record exists for the requested key.
var ErrNotIndexed = errors.New("not indexed")

// Record is one indexed workfile: its parsed parts plus file metadata.
type Record struct {
	ID        int64
	Path      string
	Parts     project.Parts
	SizeBytes int64
	Modified  time.Time
	ScannedAt time.Time
}

// ShotSummary aggregates the indexed workfiles of one scene/shot pair.
type ShotSummary struct {
	Scene       string `json:"scene"`
	Shot        string `json:"shot"`
	ShotID      string `json:"shot_id"`
	Environment string `json:"environment"`
	Stages      int    `json:"stages"`
	Workfiles   int    `json:"workfiles"`
}

// StageVersion is the newest indexed workfile of one stage.
type StageVersion struct {
	Stage    string    `json:"stage"`
	Workfile string    `json:"workfile"`
	Version  string    `json:"version"`
	Path     string    `json:"path"`
	Modified time.Time `json:"modified"`
}

// Stats summarizes index contents.
type Stats struct {
	Workfiles int
	Shots     int
	Scenes    int

	// Skipped is the skip count persisted by the last completed scan;
	// zero when no scan has run against this database.
	Skipped int
}

// Store manages workfile index persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the index database configured in cfg.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.Paths.IndexDB)
}

// OpenPath initializes or connects to the index database at path.
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Upsert inserts or refreshes the record keyed by its path.
func (s *Store) Upsert(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Path == "" {
		return errors.New("upsert: record needs a path")
	}
	scannedAt := rec.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO workfiles (
            path, scene, scene_number, shot, shot_number, shot_id,
            stage, stage_number, stage_name, environment_name,
            workfile, workfile_name, workfile_version,
            size_bytes, modified_at, scanned_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            scene = excluded.scene,
            scene_number = excluded.scene_number,
            shot = excluded.shot,
            shot_number = excluded.shot_number,
            shot_id = excluded.shot_id,
            stage = excluded.stage,
            stage_number = excluded.stage_number,
            stage_name = excluded.stage_name,
            environment_name = excluded.environment_name,
            workfile = excluded.workfile,
            workfile_name = excluded.workfile_name,
            workfile_version = excluded.workfile_version,
            size_bytes = excluded.size_bytes,
            modified_at = excluded.modified_at,
            scanned_at = excluded.scanned_at`,
		rec.Path,
		rec.Parts.Scene, rec.Parts.SceneNumber,
		rec.Parts.Shot, rec.Parts.ShotNumber, rec.Parts.ShotID,
		rec.Parts.Stage, rec.Parts.StageNumber, rec.Parts.StageName,
		rec.Parts.EnvironmentName,
		rec.Parts.Workfile, rec.Parts.WorkfileName, rec.Parts.WorkfileVersion,
		rec.SizeBytes,
		rec.Modified.UTC().Format(time.RFC3339Nano),
		scannedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert workfile %q: %w", rec.Path, err)
	}
	return nil
}

// GetByPath fetches the record for an absolute path.
func (s *Store) GetByPath(ctx context.Context, path string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, path, scene, scene_number, shot, shot_number, shot_id,
               stage, stage_number, stage_name, environment_name,
               workfile, workfile_name, workfile_version,
               size_bytes, modified_at, scanned_at
        FROM workfiles WHERE path = ?`, path)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workfile %q: %w", path, ErrNotIndexed)
	}
	return rec, err
}

// Shots lists scene/shot pairs with stage and workfile counts, ordered
// by scene then shot.
func (s *Store) Shots(ctx context.Context) ([]ShotSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT scene, shot, MIN(shot_id), MIN(environment_name),
               COUNT(DISTINCT stage), COUNT(*)
        FROM workfiles
        GROUP BY scene, shot
        ORDER BY scene, shot`)
	if err != nil {
		return nil, fmt.Errorf("query shots: %w", err)
	}
	defer rows.Close()

	var result []ShotSummary
	for rows.Next() {
		var summary ShotSummary
		if err := rows.Scan(&summary.Scene, &summary.Shot, &summary.ShotID, &summary.Environment, &summary.Stages, &summary.Workfiles); err != nil {
			return nil, fmt.Errorf("scan shot row: %w", err)
		}
		result = append(result, summary)
	}
	return result, rows.Err()
}

// LatestVersions returns the newest workfile per stage for a shot.
// Version strings are zero-padded by convention, so the lexicographic
// maximum is the newest.
func (s *Store) LatestVersions(ctx context.Context, scene, shot string) ([]StageVersion, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT w.stage, w.workfile, w.workfile_version, w.path, w.modified_at
        FROM workfiles w
        JOIN (
            SELECT stage, MAX(workfile_version) AS max_version
            FROM workfiles
            WHERE scene = ? AND shot = ?
            GROUP BY stage
        ) latest ON w.stage = latest.stage AND w.workfile_version = latest.max_version
        WHERE w.scene = ? AND w.shot = ?
        ORDER BY w.stage`, scene, shot, scene, shot)
	if err != nil {
		return nil, fmt.Errorf("query latest versions: %w", err)
	}
	defer rows.Close()

	var result []StageVersion
	for rows.Next() {
		var sv StageVersion
		var modified string
		if err := rows.Scan(&sv.Stage, &sv.Workfile, &sv.Version, &sv.Path, &modified); err != nil {
			return nil, fmt.Errorf("scan version row: %w", err)
		}
		sv.Modified, _ = time.Parse(time.RFC3339Nano, modified)
		result = append(result, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("shot %s/%s: %w", scene, shot, ErrNotIndexed)
	}
	return result, nil
}

// Stats reports index totals plus the skip count recorded by the
// last completed scan.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COUNT(DISTINCT scene || '/' || shot),
               COUNT(DISTINCT scene)
        FROM workfiles`).Scan(&stats.Workfiles, &stats.Shots, &stats.Scenes)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT skipped FROM scan_meta WHERE id = 1").Scan(&stats.Skipped)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("query scan meta: %w", err)
	}
	return stats, nil
}

// recordScan persists the outcome of a completed scan so Stats can
// report the skip count after the process exits.
func (s *Store) recordScan(ctx context.Context, scannedAt time.Time, skipped int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO scan_meta (id, last_scan_at, skipped)
        VALUES (1, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            last_scan_at = excluded.last_scan_at,
            skipped = excluded.skipped`,
		scannedAt.Format(time.RFC3339Nano), skipped)
	if err != nil {
		return fmt.Errorf("record scan meta: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var modified, scanned string
	err := row.Scan(
		&rec.ID, &rec.Path,
		&rec.Parts.Scene, &rec.Parts.SceneNumber,
		&rec.Parts.Shot, &rec.Parts.ShotNumber, &rec.Parts.ShotID,
		&rec.Parts.Stage, &rec.Parts.StageNumber, &rec.Parts.StageName,
		&rec.Parts.EnvironmentName,
		&rec.Parts.Workfile, &rec.Parts.WorkfileName, &rec.Parts.WorkfileVersion,
		&rec.SizeBytes, &modified, &scanned,
	)
	if err != nil {
		return nil, err
	}
	rec.Modified, _ = time.Parse(time.RFC3339Nano, modified)
	rec.ScannedAt, _ = time.Parse(time.RFC3339Nano, scanned)
	return &rec, nil
}
