//go:build !unix

package fstream

// kindOfOS classifies OS errors on platforms without a stable errno
// surface. The os package wraps its failures in [io/fs] sentinels, which
// is all the portable backend produces.
func kindOfOS(err error) Kind {
	return kindOfFS(err)
}
