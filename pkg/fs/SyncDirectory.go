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

	"golang.org/x/sync/errgroup"
)

// SyncDirectory recursively synchronizes the source directory to the
// destination directory, copying up to input.Limit files (-1 for no limit)
// with up to input.MaxThreads files in flight per directory.
func SyncDirectory(ctx context.Context, input *SyncDirectoryInput) (int, error) {

	// limit is zero
	if input.Limit == 0 {
		return 0, nil
	}

	sourceDirectoryEntries, err := input.SourceFileSystem.ReadDir(ctx, input.SourceDirectory)
	if err != nil {
		return 0, fmt.Errorf("error reading source directory %q: %w", input.SourceDirectory, err)
	}

	// wait group
	var wg errgroup.Group
	if input.MaxThreads > 0 {
		wg.SetLimit(input.MaxThreads)
	}

	// declare count
	count := 0

	for _, sourceDirectoryEntry := range sourceDirectoryEntries {
		sourceName := input.SourceFileSystem.Join(input.SourceDirectory, sourceDirectoryEntry.Name())
		destinationName := input.DestinationFileSystem.Join(input.DestinationDirectory, sourceDirectoryEntry.Name())
		if sourceDirectoryEntry.IsDir() {
			// create the destination directory if missing,
			// then synchronize the directory and wait until all files are finished copying
			if _, err := input.DestinationFileSystem.Stat(ctx, destinationName); err != nil {
				if !input.DestinationFileSystem.IsNotExist(err) {
					_ = wg.Wait() // drain in-flight copies before returning
					return 0, fmt.Errorf("error stating destination directory %q: %w", destinationName, err)
				}
				if err := input.DestinationFileSystem.Mkdir(ctx, destinationName, 0755); err != nil {
					_ = wg.Wait()
					return 0, fmt.Errorf("error creating destination directory %q: %w", destinationName, err)
				}
			}
			directoryLimit := -1
			if input.Limit != -1 {
				directoryLimit = input.Limit - count
			}
			c, err := SyncDirectory(ctx, &SyncDirectoryInput{
				SourceDirectory:       sourceName,
				SourceFileSystem:      input.SourceFileSystem,
				DestinationDirectory:  destinationName,
				DestinationFileSystem: input.DestinationFileSystem,
				Options:               input.Options,
				CheckTimestamps:       input.CheckTimestamps,
				Limit:                 directoryLimit,
				Logger:                input.Logger,
				MaxThreads:            input.MaxThreads,
				TimestampPrecision:    input.TimestampPrecision,
			})
			if err != nil {
				_ = wg.Wait()
				return 0, err
			}
			count += c
		} else {
			// decide here whether the file needs to be copied, so count is
			// the number of files copied, not the number visited
			copyFile := false
			destinationFileInfo, err := input.DestinationFileSystem.Stat(ctx, destinationName)
			if err != nil {
				if input.DestinationFileSystem.IsNotExist(err) {
					copyFile = true
				} else {
					_ = wg.Wait()
					return 0, fmt.Errorf("error stating destination %q: %w", destinationName, err)
				}
			} else {
				if sourceDirectoryEntry.Size() != destinationFileInfo.Size() {
					copyFile = true
				}
				if input.CheckTimestamps {
					if !EqualTimestamp(sourceDirectoryEntry.ModTime(), destinationFileInfo.ModTime(), input.TimestampPrecision) {
						copyFile = true
					}
				}
			}
			if copyFile {
				count += 1
				wg.Go(func() error {
					err := Copy(ctx, &CopyInput{
						SourceName:            sourceName,
						SourceFileSystem:      input.SourceFileSystem,
						DestinationName:       destinationName,
						DestinationFileSystem: input.DestinationFileSystem,
						Options:               append([]Option{OptionReplaceExisting}, input.Options...),
						Logger:                input.Logger,
					})
					if err != nil {
						return fmt.Errorf("error copying %q to %q: %w", sourceName, destinationName, err)
					}
					return nil
				})
			}
		}
		// break if count is greater than or at the limit
		if input.Limit != -1 && count >= input.Limit {
			break
		}
	}

	// wait for all files in directory to copy before returning
	if err := wg.Wait(); err != nil {
		return 0, fmt.Errorf("error synchronizing directory %q to %q: %w", input.SourceDirectory, input.DestinationDirectory, err)
	}

	return count, nil
}
