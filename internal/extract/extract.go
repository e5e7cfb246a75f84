// Package extract writes the records of a parsed archive to a directory tree.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/pakkit/internal/format"
	"github.com/joshuapare/pakkit/internal/logger"
	"github.com/joshuapare/pakkit/internal/reader"
	"github.com/joshuapare/pakkit/internal/writer"
	"github.com/joshuapare/pakkit/pkg/types"
)

// TargetPath resolves a record name below outDir. Both '/' and '\' separate
// directories. Absolute names and names that climb out of outDir are rejected
// with kind ErrKindPath.
func TargetPath(outDir, name string) (string, error) {
	rel := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if !filepath.IsLocal(rel) {
		return "", &types.Error{Kind: types.ErrKindPath, Msg: types.ErrUnsafePath.Msg, Err: fmt.Errorf("name %q", name)}
	}
	return filepath.Join(outDir, rel), nil
}

// One writes a single record below outDir.
func One(a *reader.Archive, r types.Record, outDir string, opts types.ExtractOptions) error {
	data, err := a.Data(r)
	if err != nil {
		return err
	}
	target, err := TargetPath(outDir, r.Name)
	if err != nil {
		return err
	}
	mtime := format.FiletimeToTime(r.RawTime)
	if err := writer.CheckModTime(mtime); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: fmt.Sprintf("extract %q", r.Name), Err: fmt.Errorf("record time 0x%x: %w", r.RawTime, err)}
	}
	w := &writer.FileWriter{
		Path:    target,
		ModTime: mtime,
		Sync:    opts.Sync,
	}
	if err := w.Write(data); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: fmt.Sprintf("extract %q", r.Name), Err: err}
	}
	logger.Debug("wrote file", "name", r.Name, "size", r.Size, "path", target)
	return nil
}

// All writes every selected record below outDir in table order. By default
// the first failure stops extraction and earlier files stay on disk; with
// opts.ContinueOnError all failures are returned joined.
func All(a *reader.Archive, outDir string, opts types.ExtractOptions) error {
	selected := selectRecords(a, opts.Filter)
	logger.Info("Writing files", "dir", outDir, "records", len(selected))

	var err error
	if opts.Jobs > 1 && len(selected) > 1 {
		err = parallel(a, selected, outDir, opts)
	} else {
		err = sequential(a, selected, outDir, opts)
	}
	if err != nil {
		return err
	}
	logger.Info("Extraction complete", "dir", outDir, "records", len(selected))
	return nil
}

func selectRecords(a *reader.Archive, filter func(types.Record) bool) []types.Record {
	if filter == nil {
		return a.Records()
	}
	var out []types.Record
	for i, n := 0, a.Len(); i < n; i++ {
		if r := a.Record(i); filter(r) {
			out = append(out, r)
		}
	}
	return out
}

func sequential(a *reader.Archive, records []types.Record, outDir string, opts types.ExtractOptions) error {
	var (
		errs []error
		done int
	)
	for _, r := range records {
		if err := One(a, r, outDir, opts); err != nil {
			if !opts.ContinueOnError {
				return err
			}
			logger.Error("extract failed", "name", r.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		done++
		if opts.OnProgress != nil {
			opts.OnProgress(done, len(records))
		}
	}
	return errors.Join(errs...)
}

type indexedErr struct {
	idx int
	err error
}

// parallel extracts with at most opts.Jobs writers. Records sharing a target
// path form one group written in table order, so the last one wins exactly
// as in sequential mode. Without opts.ContinueOnError, records after the
// lowest failed index are skipped while earlier ones still complete.
func parallel(a *reader.Archive, records []types.Record, outDir string, opts types.ExtractOptions) error {
	groups := groupByTarget(records, outDir)

	var g errgroup.Group
	g.SetLimit(opts.Jobs)

	var (
		mu        sync.Mutex
		done      int
		errs      []indexedErr
		firstFail = len(records)
	)
	stopped := func(idx int) bool {
		if opts.ContinueOnError {
			return false
		}
		mu.Lock()
		defer mu.Unlock()
		return idx > firstFail
	}
	for _, group := range groups {
		if stopped(group[0]) {
			break
		}
		group := group
		g.Go(func() error {
			for _, idx := range group {
				if stopped(idx) {
					return nil
				}
				r := records[idx]
				if err := One(a, r, outDir, opts); err != nil {
					logger.Error("extract failed", "name", r.Name, "error", err)
					mu.Lock()
					errs = append(errs, indexedErr{idx: idx, err: err})
					firstFail = min(firstFail, idx)
					mu.Unlock()
					continue
				}
				mu.Lock()
				done++
				if opts.OnProgress != nil {
					opts.OnProgress(done, len(records))
				}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].idx < errs[j].idx })
	if !opts.ContinueOnError {
		return errs[0].err
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e.err
	}
	return errors.Join(joined...)
}

// groupByTarget returns record indexes grouped by output path, groups ordered
// by first appearance. Names that do not resolve get a group of their own and
// fail when run.
func groupByTarget(records []types.Record, outDir string) [][]int {
	var groups [][]int
	byPath := make(map[string]int, len(records))
	for i, r := range records {
		target, err := TargetPath(outDir, r.Name)
		if err != nil {
			groups = append(groups, []int{i})
			continue
		}
		if g, ok := byPath[target]; ok {
			groups[g] = append(groups[g], i)
			continue
		}
		byPath[target] = len(groups)
		groups = append(groups, []int{i})
	}
	return groups
}
