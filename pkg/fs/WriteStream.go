// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
	"io"
	"os"
)

// WriteStream is the byte-transfer primitive used by Copy.  It streams the
// source into a new file at name on the destination provider.  Without
// OptionReplaceExisting the destination is opened exclusively, so an
// existing file fails the transfer instead of being truncated.
func WriteStream(ctx context.Context, source io.Reader, fileSystem FileSystem, name string, options ...Option) error {
	opts, err := ParseCopyOptions(options...)
	if err != nil {
		return err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if opts.ReplaceExisting {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	destinationFile, err := fileSystem.OpenFile(ctx, name, flag, 0666)
	if err != nil {
		return fmt.Errorf("error creating destination file at %q: %w", name, err)
	}

	if _, err := io.Copy(destinationFile, source); err != nil {
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error copying to %q: %w", name, err)
	}

	if err := destinationFile.Close(); err != nil {
		return fmt.Errorf("error closing destination file after copying: %w", err)
	}

	return nil
}
