package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"randompick/internal/errors"
	"randompick/internal/log"

	"github.com/fsnotify/fsnotify"
)

// ReadItemsFile returns the contents of an items file as the raw input text.
func ReadItemsFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := errors.FileAccessDenied
		if os.IsNotExist(err) {
			kind = errors.FileNotFound
		}
		return "", errors.NewFileError("cannot read items file", path, kind, err)
	}
	return string(data), nil
}

// emptySettle is how long an emptied file must stay empty before the empty
// contents are delivered. Editors that save by truncating and then writing
// produce a transient empty read in between.
const emptySettle = 200 * time.Millisecond

// Follower keeps a sink in sync with the contents of one items file. It
// watches the file's directory rather than the file itself so that editors
// which save by writing a new file and renaming it are still followed.
type Follower struct {
	path string
	sink func(text string)

	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}
	done      chan struct{}

	mutex   sync.Mutex
	running bool
	stopped bool
}

// NewFollower creates a follower for path. sink receives the full file
// contents on Start and after every change.
func NewFollower(path string, sink func(text string)) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.NewFileError("invalid items file path", path, errors.FileNotFound, err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewFileError("failed to create fsnotify watcher", path, errors.WatchFailed, err)
	}
	return &Follower{
		path:      abs,
		sink:      sink,
		fsWatcher: fsWatcher,
	}, nil
}

// Path returns the absolute path being followed.
func (f *Follower) Path() string {
	return f.path
}

// Start delivers the current contents and begins following changes.
func (f *Follower) Start() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.stopped {
		return fmt.Errorf("follower stopped")
	}
	if f.running {
		return fmt.Errorf("follower already running")
	}

	text, err := ReadItemsFile(f.path)
	if err != nil {
		return err
	}

	if err := f.fsWatcher.Add(filepath.Dir(f.path)); err != nil {
		return errors.NewFileError("failed to watch items file", f.path, errors.WatchFailed, err)
	}

	f.sink(text)

	f.running = true
	f.stopChan = make(chan struct{})
	f.done = make(chan struct{})
	go f.loop(text, f.stopChan, f.done)

	log.LogWithFields(log.F("file", f.path)).Debug("following items file")
	return nil
}

func (f *Follower) loop(last string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var settle *time.Timer
	var settleC <-chan time.Time
	defer func() {
		if settle != nil {
			settle.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-f.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			text, err := ReadItemsFile(f.path)
			if err != nil {
				// Replaced files can vanish between the event and the read.
				if !errors.IsFileNotFound(err) {
					log.LogWithError(err).Warn("re-reading items file failed")
				}
				continue
			}
			if isBlank(text) && !isBlank(last) {
				if settle == nil {
					settle = time.NewTimer(emptySettle)
				} else {
					settle.Reset(emptySettle)
				}
				settleC = settle.C
				continue
			}
			if settleC != nil {
				settle.Stop()
				settleC = nil
			}
			last = text
			f.sink(text)

		case <-settleC:
			settleC = nil
			text, err := ReadItemsFile(f.path)
			if err != nil {
				if !errors.IsFileNotFound(err) {
					log.LogWithError(err).Warn("re-reading items file failed")
				}
				continue
			}
			last = text
			f.sink(text)

		case err, ok := <-f.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("file", f.path), log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Stop ends following, waits for the event loop to exit and releases the
// fsnotify watcher. It is safe to call more than once and before Start; a
// stopped follower cannot be started again.
func (f *Follower) Stop() {
	f.mutex.Lock()
	if f.stopped {
		f.mutex.Unlock()
		return
	}
	f.stopped = true
	var done chan struct{}
	if f.running {
		f.running = false
		close(f.stopChan)
		done = f.done
	}
	f.mutex.Unlock()

	if done != nil {
		<-done
	}
	if err := f.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
}

// IsRunning reports whether the follower is active.
func (f *Follower) IsRunning() bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.running
}
