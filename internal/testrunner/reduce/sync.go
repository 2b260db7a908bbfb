package reduce

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/orizon-lang/orizon-reduce/internal/runtime/vfs"
)

// PeerCandidate is an input pulled from a peer session's queue/ directory,
// tagged with the donor fields SaveIfInteresting needs to render the
// sync:peer,src:NNNNNN filename grammar (spec.md §6).
type PeerCandidate struct {
	Peer  string
	Case  uint64
	Input []byte
}

// SyncWatcher watches one or more peer queue/ directories (AFL -S/-M sync
// semantics) and surfaces newly-appeared peer inputs as splice candidates.
// Each peer directory is named by its session id, mirroring
// out_dir/<peer>/queue/ on disk; the case number is parsed back out of the
// id:NNNNNN prefix of the filename fsnotify reports.
type SyncWatcher struct {
	watcher vfs.Watcher
	candC   chan PeerCandidate
	errC    chan error

	mu    sync.Mutex
	peers map[string]string // peer name -> watched directory
}

// NewSyncWatcher opens an OS-native fsnotify watcher; callers add peer
// directories with AddPeer as sync partners are discovered.
func NewSyncWatcher() (*SyncWatcher, error) {
	w, err := vfs.NewFSWatcher()
	if err != nil {
		return nil, err
	}

	sw := &SyncWatcher{
		watcher: w,
		candC:   make(chan PeerCandidate, 64),
		errC:    make(chan error, 1),
		peers:   make(map[string]string),
	}

	go sw.loop()

	return sw, nil
}

// AddPeer begins watching peer's queue directory for newly-written
// entries. peer is the directory name under out_dir (the sync party's own
// session id); dir is that peer's queue/ path.
func (sw *SyncWatcher) AddPeer(peer, dir string) error {
	sw.mu.Lock()
	sw.peers[dir] = peer
	sw.mu.Unlock()

	return sw.watcher.Add(dir)
}

// Candidates returns the channel of peer inputs discovered so far.
func (sw *SyncWatcher) Candidates() <-chan PeerCandidate { return sw.candC }

// Errors returns the channel of watch errors (polite-class: a caller logs
// and continues, a dropped sync event is not worth a fatal exit).
func (sw *SyncWatcher) Errors() <-chan error { return sw.errC }

func (sw *SyncWatcher) loop() {
	for {
		select {
		case ev, ok := <-sw.watcher.Events():
			if !ok {
				return
			}

			if ev.Op&(vfs.OpCreate|vfs.OpWrite) == 0 {
				continue
			}

			sw.mu.Lock()
			peer, known := sw.peers[filepath.Dir(ev.Path)]
			sw.mu.Unlock()

			if !known {
				continue
			}

			data, err := os.ReadFile(ev.Path)
			if err != nil {
				sw.errC <- err

				continue
			}

			sw.candC <- PeerCandidate{
				Peer:  peer,
				Case:  parseCaseID(filepath.Base(ev.Path)),
				Input: data,
			}
		case err, ok := <-sw.watcher.Errors():
			if !ok {
				return
			}

			sw.errC <- err
		}
	}
}

// Close stops the underlying watch.
func (sw *SyncWatcher) Close() error { return sw.watcher.Close() }

// parseCaseID extracts NNNNNN from a queue filename of the form
// "id:NNNNNN,...". Returns 0 if the filename doesn't match the grammar
// (e.g. README.txt), which is harmless: the resulting donor field is
// informational only.
func parseCaseID(name string) uint64 {
	const prefix = "id:"
	if len(name) < len(prefix)+6 || name[:len(prefix)] != prefix {
		return 0
	}

	var n uint64

	for i := len(prefix); i < len(name) && name[i] >= '0' && name[i] <= '9'; i++ {
		n = n*10 + uint64(name[i]-'0')
	}

	return n
}

// AsDonor renders a PeerCandidate as the Donor SaveIfInteresting expects
// for the sync:peer,src:NNNNNN filename field.
func (c PeerCandidate) AsDonor() Donor {
	return Donor{SyncPeer: c.Peer, SyncCase: c.Case, SplicedID: -1}
}
