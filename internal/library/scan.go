package library

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
)

// ScanStats summarizes a completed scan.
type ScanStats struct {
	Files   int   // music files found
	Added   int   // files not previously indexed
	Removed int   // indexed files no longer found under the scanned sources
	Bytes   int64 // total size of the files found
}

type fileInfo struct {
	path   string
	name   string
	source string
	size   int64
	mtime  int64
}

// Scan walks sources for files accepted by match and replaces their index
// entries. Entries from sources that are not scanned are left alone.
func (i *Index) Scan(ctx context.Context, sources []string, match func(path string) bool) (ScanStats, error) {
	files, err := discoverFiles(ctx, sources, match)
	if err != nil {
		return ScanStats{}, err
	}

	var stats ScanStats
	err = i.withTx(func(tx *sql.Tx) error {
		existing, err := existingPaths(tx, sources)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO tracks (path, name, source, size, mtime) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				name = excluded.name, source = excluded.source,
				size = excluded.size, mtime = excluded.mtime
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := stmt.Exec(f.path, f.name, f.source, f.size, f.mtime); err != nil {
				return err
			}
			if _, ok := existing[f.path]; ok {
				delete(existing, f.path)
			} else {
				stats.Added++
			}
			stats.Files++
			stats.Bytes += f.size
		}

		for path := range existing {
			if _, err := tx.Exec(`DELETE FROM tracks WHERE path = ?`, path); err != nil {
				return err
			}
			stats.Removed++
		}
		return nil
	})
	if err != nil {
		return ScanStats{}, err
	}
	return stats, nil
}

func existingPaths(tx *sql.Tx, sources []string) (map[string]struct{}, error) {
	paths := make(map[string]struct{})
	for _, src := range sources {
		rows, err := tx.Query(`SELECT path FROM tracks WHERE source = ?`, src)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var p string
			if err := rows.Scan(&p); err != nil {
				rows.Close()
				return nil, err
			}
			paths[p] = struct{}{}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// discoverFiles walks the source directories. Unreadable entries are skipped.
func discoverFiles(ctx context.Context, sources []string, match func(path string) bool) ([]fileInfo, error) {
	var files []fileInfo
	for _, src := range sources {
		err := filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !match(path) {
				return nil
			}
			info, infoErr := d.Info()
			if infoErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			files = append(files, fileInfo{
				path:   path,
				name:   d.Name(),
				source: src,
				size:   info.Size(),
				mtime:  info.ModTime().Unix(),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
