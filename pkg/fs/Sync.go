// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"fmt"
)

// Sync copies the source to the destination if the destination is missing
// or differs by size or, when requested, by timestamp.  A directory source
// is synchronized recursively.  Sync always replaces existing destination
// files, so input.Options must not contain OptionReplaceExisting itself.
// It returns the number of files copied.
func Sync(ctx context.Context, input *SyncInput) (int, error) {

	// validate the per-file options before touching either side
	if _, err := ParseCopyOptions(input.Options...); err != nil {
		return 0, err
	}

	if input.Logger != nil {
		input.Logger.Log("Synchronizing", map[string]interface{}{
			"src":     input.Source,
			"dst":     input.Destination,
			"threads": input.MaxThreads,
		})
	}

	sourceFileInfo, err := input.SourceFileSystem.Stat(ctx, input.Source)
	if err != nil {
		if input.SourceFileSystem.IsNotExist(err) {
			return 0, fmt.Errorf("source does not exist %q: %w", input.Source, err)
		}
		return 0, fmt.Errorf("error stating source %q: %w", input.Source, err)
	}

	// if source is a directory
	if sourceFileInfo.IsDir() {
		if _, err := input.DestinationFileSystem.Stat(ctx, input.Destination); err != nil {
			if input.DestinationFileSystem.IsNotExist(err) {
				if !input.Parents {
					return 0, fmt.Errorf("destination directory does not exist and parents is false: %q", input.Destination)
				}
				if err := input.DestinationFileSystem.MkdirAll(ctx, input.Destination, 0755); err != nil {
					return 0, fmt.Errorf("error creating destination directory %q: %w", input.Destination, err)
				}
			}
		}
		count, err := SyncDirectory(ctx, &SyncDirectoryInput{
			SourceDirectory:       input.Source,
			SourceFileSystem:      input.SourceFileSystem,
			DestinationDirectory:  input.Destination,
			DestinationFileSystem: input.DestinationFileSystem,
			Options:               input.Options,
			CheckTimestamps:       input.CheckTimestamps,
			Limit:                 input.Limit,
			Logger:                input.Logger,
			MaxThreads:            input.MaxThreads,
			TimestampPrecision:    input.TimestampPrecision,
		})
		if err != nil {
			return 0, fmt.Errorf(
				"error syncing source directory %q (base %q) to destination directory %q (base %q): %w",
				input.Source,
				input.SourceFileSystem.Root(),
				input.Destination,
				input.DestinationFileSystem.Root(),
				err,
			)
		}
		return count, nil
	}

	// if source is a file
	copyFile := false

	destinationFileInfo, err := input.DestinationFileSystem.Stat(ctx, input.Destination)
	if err != nil {
		if input.DestinationFileSystem.IsNotExist(err) {
			copyFile = true
		} else {
			return 0, fmt.Errorf("error stating destination %q: %w", input.Destination, err)
		}
	} else {
		if sourceFileInfo.Size() != destinationFileInfo.Size() {
			copyFile = true
		}
		if input.CheckTimestamps {
			if !EqualTimestamp(sourceFileInfo.ModTime(), destinationFileInfo.ModTime(), input.TimestampPrecision) {
				copyFile = true
			}
		}
	}

	if copyFile {
		err = Copy(ctx, &CopyInput{
			SourceName:            input.Source,
			SourceFileSystem:      input.SourceFileSystem,
			DestinationName:       input.Destination,
			DestinationFileSystem: input.DestinationFileSystem,
			Options:               append([]Option{OptionReplaceExisting}, input.Options...),
			Logger:                input.Logger,
			MakeParents:           input.Parents,
		})
		if err != nil {
			return 0, fmt.Errorf("error copying %q to %q: %w", input.Source, input.Destination, err)
		}
		return 1, nil
	}

	return 0, nil
}
