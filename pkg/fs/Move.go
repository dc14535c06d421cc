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

// Move moves a single file or directory between two providers as a copy
// followed by a deletion of the source.  OptionAtomicMove is always
// rejected with ErrAtomicMoveNotSupported before either side is touched.
//
// If deleting the source fails after the copy succeeded, the deletion
// failure is returned and both the source and the fully-populated
// destination are left in place.  The completed copy is not undone.
func Move(ctx context.Context, input *MoveInput) error {
	options, err := convertMoveToCopyOptions(input.Options...)
	if err != nil {
		return err
	}

	if input.Logger != nil {
		input.Logger.Log("Moving", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	err = Copy(ctx, &CopyInput{
		SourceName:            input.SourceName,
		SourceFileSystem:      input.SourceFileSystem,
		DestinationName:       input.DestinationName,
		DestinationFileSystem: input.DestinationFileSystem,
		Options:               options,
		Logger:                input.Logger,
		MakeParents:           input.MakeParents,
	})
	if err != nil {
		return err
	}

	if err := input.SourceFileSystem.Remove(ctx, input.SourceName); err != nil {
		return fmt.Errorf("error removing source %q after copying to %q: %w", input.SourceName, input.DestinationName, err)
	}

	if input.Logger != nil {
		input.Logger.Log("Done moving", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	return nil
}

// convertMoveToCopyOptions converts the options for a move into options for
// the underlying copy.  A move between providers always preserves the
// source attributes and never follows a terminal symbolic link, so those
// two options are appended regardless of what the caller passed.
func convertMoveToCopyOptions(options ...Option) ([]Option, error) {
	copyOptions := make([]Option, 0, len(options)+2)
	for _, option := range options {
		if option == OptionAtomicMove {
			return nil, ErrAtomicMoveNotSupported
		}
		copyOptions = append(copyOptions, option)
	}
	return append(copyOptions, OptionNoFollowLinks, OptionCopyAttributes), nil
}
