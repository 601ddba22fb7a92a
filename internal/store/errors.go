package store

import "fmt"

// CorruptStoreError reports a persisted file that fails to parse or fails
// whole-store validation on load. Recovery is RestoreFromBackup, never
// automatic repair.
type CorruptStoreError struct {
	Path      string
	FieldPath string
	Err       error
}

func (e *CorruptStoreError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("corrupt store %s at %s: %v", e.Path, e.FieldPath, e.Err)
	}
	return fmt.Sprintf("corrupt store %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// WriteVerificationFailed reports that the post-write round-trip check
// failed during save. The canonical file is guaranteed untouched.
type WriteVerificationFailed struct {
	Path string
	Err  error
}

func (e *WriteVerificationFailed) Error() string {
	return fmt.Sprintf("write verification failed for %s: %v", e.Path, e.Err)
}

func (e *WriteVerificationFailed) Unwrap() error { return e.Err }
