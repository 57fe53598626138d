package lock

import "errors"

// ErrLocked is returned by Acquire when another process holds the lock
var ErrLocked = errors.New("another instance of zzz is running")

// LockFilePerm is the permission of a freshly created lock file
const LockFilePerm = 0o600
