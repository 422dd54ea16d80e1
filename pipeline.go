package bacontile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/iroiro-gamedev/BaconTileSetter/tileset"
)

const scanWorkers = 10

func (t *TileSetter) findDirectories(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(dir string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a directory
			if !info.Mode().IsDir() {
				return nil
			}

			select {
			case out <- dir:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (t *TileSetter) exportWorker(ctx context.Context, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for dir := range in {
			ok, err := tileset.Contains(dir)
			if err != nil {
				errc <- err
				return
			}
			if !ok {
				continue
			}

			if err := t.Export(dir, filepath.Join(dir, BundleFilename)); err != nil {
				// A slot image may disappear between the check and the
				// load; treat that like any other empty directory.
				if errors.Is(err, tileset.ErrNoSources) {
					continue
				}
				errc <- err
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks a directory tree and writes a bundle into every directory
// holding tile set sources. Hidden directories are skipped; directories
// without any slot image are left untouched.
func (t *TileSetter) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dirs, errc := t.findDirectories(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errcList = append(errcList, t.exportWorker(ctx, dirs))
	}

	return waitForPipeline(errcList...)
}
