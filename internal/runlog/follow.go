package runlog

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback read period. Driver logs usually live on
// shared cluster filesystems where inotify events are not delivered, so
// Follow always polls in addition to watching.
const pollInterval = 2 * time.Second

// Follow streams bytes appended to the file at path, starting at offset,
// until ctx is cancelled. The returned channel is closed when the follow
// stops.
func Follow(ctx context.Context, path string, offset int64) (<-chan []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Watch the directory: the file itself may be replaced on a timestamp
	// collision.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.Printf("[follow] watch failed, polling only: %v", err)
	}

	out := make(chan []byte, 16)

	go func() {
		defer close(out)
		defer f.Close()
		defer watcher.Close()

		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		emit := func() {
			for {
				buf := make([]byte, 32*1024)
				n, err := f.Read(buf)
				if n > 0 {
					select {
					case out <- buf[:n]:
					case <-ctx.Done():
						return
					}
				}
				if err != nil {
					return
				}
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name == path && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					emit()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[follow] watcher error: %v", err)
			case <-ticker.C:
				emit()
			}
		}
	}()

	return out, nil
}
