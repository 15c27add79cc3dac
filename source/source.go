// Package source loads a finalized document from disk (§4.15, C15): mmap
// on unix, a plain read elsewhere, via internal/mmfile, validated before
// any navigator is allowed to touch it (§7's "never expose untrusted
// input unvalidated" rule). Grounded on hivekit's hive.Open/internal/mmfile
// pairing — the same map-then-wrap flow, generalized from a registry hive
// handle to a node.Buffer.
package source

import (
	"github.com/kesselring/dartbuf/internal/mmfile"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/types"
	"github.com/kesselring/dartbuf/validate"
)

// Open maps the finalized document at path into memory, validates it
// against rootType, and wraps it in a node.Buffer using the Plain
// refcount policy — an mmap'd file belongs to a single reader process, so
// the cheaper non-atomic counter applies (§4.15, §5). It returns a
// release function that unmaps (or frees) the backing bytes; callers must
// call it exactly once, after every Value/Object/Array derived from the
// buffer has gone out of scope.
func Open(path string, rootType types.RawType) (*node.Buffer, func() error, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, err
	}

	if err := validate.Bytes(data, rootType); err != nil {
		release()
		return nil, nil, types.ValidationFailed(err)
	}

	buf := node.NewBuffer(data, rootType, false, func() {
		_ = release()
	})
	return buf, func() error { buf.Release(); return nil }, nil
}

// OpenObject is a convenience wrapper over Open for the common case: every
// document this module produces (BuildObject, Merge, Project) is
// object-rooted (§4.8's "both must be root objects"), so most callers
// never need to name rootType explicitly.
func OpenObject(path string) (*node.Buffer, func() error, error) {
	return Open(path, types.Object)
}
