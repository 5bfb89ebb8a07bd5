//go:build unix

package frontend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

var errNoDeviceNodes = errors.New("no device nodes found")

// DeviceAuthorizer grants tuner access when the process can open at least one
// device node for reading and writing. A directory in Paths, such as
// /dev/bus/usb, stands for every node below it.
type DeviceAuthorizer struct {
	Paths []string
}

func (d DeviceAuthorizer) CheckTunerAccess(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(d.Paths) == 0 {
		return fmt.Errorf("no device paths configured: %w", ErrPermissionDenied)
	}
	lastErr := errNoDeviceNodes
	for _, p := range d.Paths {
		nodes, err := deviceNodes(p)
		if err != nil {
			lastErr = err
			continue
		}
		for _, n := range nodes {
			if err := unix.Access(n, unix.R_OK|unix.W_OK); err != nil {
				lastErr = fmt.Errorf("%s: %w", n, err)
				continue
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %w", ErrPermissionDenied, lastErr)
}

// deviceNodes expands root into the non-directory entries below it. Unreadable
// sub directories are skipped.
func deviceNodes(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var nodes []string
	err = filepath.WalkDir(root, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !e.IsDir() {
			nodes = append(nodes, p)
		}
		return nil
	})
	return nodes, err
}
