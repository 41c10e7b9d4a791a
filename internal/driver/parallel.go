package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/preproc"
)

// Ext is the extension of markup files picked up by ListFiles.
const Ext = ".ftml"

// FileResult is the render of one file from RenderFiles.
type FileResult struct {
	Path   string
	Render *HTMLResult
	// Cached is set when Render came from the cache; only Render.Output is filled then.
	Cached bool
	Err    error // ошибка чтения или невалидная страница
}

// ListFiles returns every *.ftml file under dir, sorted.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// SlugFor derives a page slug from a file name: "dir/My Page.ftml" -> "my-page".
func SlugFor(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.ToLower(strings.TrimSpace(base))
	return strings.Join(strings.Fields(base), "-")
}

// RenderFiles renders every path to HTML in parallel. Results keep the order
// of paths. When info.Page is empty each file gets the slug of its name.
// Per-file failures land in FileResult.Err; the returned error is only
// context cancellation.
func RenderFiles(ctx context.Context, paths []string, info page.PageInfo, opts Options, jobs int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = renderFile(gctx, path, info, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func renderFile(ctx context.Context, path string, info page.PageInfo, opts Options) FileResult {
	res := FileResult{Path: path}
	start := time.Now()
	defer func() {
		ev := Event{File: path, Stage: StageGenerate, Status: StatusDone, Elapsed: time.Since(start)}
		if res.Err != nil {
			ev.Status, ev.Err = StatusError, res.Err
		}
		emit(opts.Progress, ev)
	}()

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the caller
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		return res
	}
	input := string(data)
	if opts.Preprocess {
		input = preproc.Substitute(input)
	}
	if info.Page == "" {
		info.Page = SlugFor(path)
	}
	opts.Path = path
	opts.Observer = fileObserver(opts.Progress, path, opts.Observer)

	var key Digest
	if opts.Cache != nil {
		key = CacheKey(input, &info, opts.Settings, cacheVersion(opts))
		if out, ok, err := opts.Cache.Get(key); err == nil && ok {
			res.Render, res.Cached = &HTMLResult{Result: &Result{}, Output: *out}, true
			return res
		}
	}
	res.Render, res.Err = RenderHTML(ctx, input, info, opts)
	if res.Err == nil && opts.Cache != nil {
		if err := opts.Cache.Put(key, &res.Render.Output); err != nil {
			res.Err = fmt.Errorf("cache %s: %w", path, err)
		}
	}
	return res
}
