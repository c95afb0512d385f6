package store

import (
	"os"
	"time"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
)

// ResolvedDocument is a document assembled from one or more layer files.
type ResolvedDocument struct {
	// Document is the merged tree. Callers own it and may mutate it.
	Document *document.Node

	// Format is the notation the layers were written in.
	Format document.Format

	// Sources lists the layer files that contributed, lowest priority first.
	Sources []string

	// Fingerprint records the state of every path the resolution depended on.
	Fingerprint Fingerprint
}

// Clone returns a copy whose Document can be mutated independently.
func (d *ResolvedDocument) Clone() *ResolvedDocument {
	out := *d
	out.Document = d.Document.Clone()
	out.Sources = append([]string(nil), d.Sources...)
	return &out
}

type fileStamp struct {
	path    string
	exists  bool
	size    int64
	modTime time.Time
}

func stampPath(path string) fileStamp {
	st := fileStamp{path: path}
	info, err := os.Stat(path)
	if err != nil {
		return st
	}
	st.exists = true
	st.size = info.Size()
	st.modTime = info.ModTime()
	return st
}

func (s fileStamp) equal(o fileStamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

// Fingerprint is the modification state of the directories and files a
// document was resolved from. Directories are included so that files
// appearing or disappearing invalidate it as well.
type Fingerprint []fileStamp

func (f *Fingerprint) add(path string) {
	*f = append(*f, stampPath(path))
}

// Fresh reports whether every recorded path is still in the recorded state.
func (f Fingerprint) Fresh() bool {
	for _, st := range f {
		if !st.equal(stampPath(st.path)) {
			return false
		}
	}
	return true
}
