// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"errors"
	"fmt"
)

// Copy copies a single file or directory between two providers.  A directory
// is created at the destination without its contents; use Sync to copy a
// tree.  The source attributes are captured once before the destination is
// touched, so a concurrent modification of the source during the copy may
// leave the destination inconsistent with the snapshot.
//
// If OptionCopyAttributes is set and propagating the attributes fails, the
// destination is deleted before the failure is returned.  If that deletion
// also fails, a RollbackError carrying both failures is returned.
func Copy(ctx context.Context, input *CopyInput) error {
	opts, err := ParseCopyOptions(input.Options...)
	if err != nil {
		return err
	}

	if input.Logger != nil {
		input.Logger.Log("Copying", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	sourceAttributes, err := readSourceAttributes(ctx, input.SourceFileSystem, input.SourceName, opts.FollowLinks)
	if err != nil {
		return fmt.Errorf("error reading attributes of source %q: %w", input.SourceName, err)
	}

	if sourceAttributes.Kind == KindSymlink {
		return fmt.Errorf("copying symbolic link %q between providers: %w", input.SourceName, ErrUnsupported)
	}

	if input.MakeParents {
		if err := makeParents(ctx, input.DestinationFileSystem, input.DestinationName); err != nil {
			return err
		}
	}

	if sourceAttributes.Kind == KindDirectory {
		if opts.ReplaceExisting {
			if _, err := input.DestinationFileSystem.RemoveIfExists(ctx, input.DestinationName); err != nil {
				return fmt.Errorf("error removing existing destination %q: %w", input.DestinationName, err)
			}
		}
		if err := input.DestinationFileSystem.Mkdir(ctx, input.DestinationName, 0755); err != nil {
			return fmt.Errorf("error creating destination directory %q: %w", input.DestinationName, err)
		}
	} else {
		sourceFile, err := input.SourceFileSystem.Open(ctx, input.SourceName)
		if err != nil {
			return fmt.Errorf("error opening source file at %q: %w", input.SourceName, err)
		}
		err = WriteStream(ctx, sourceFile, input.DestinationFileSystem, input.DestinationName, opts.ReplaceExistingOrEmpty()...)
		if closeErr := sourceFile.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("error closing source file after copying: %w", closeErr)
		}
		if err != nil {
			return err
		}
	}

	if opts.CopyAttributes {
		if err := writeAttributes(ctx, sourceAttributes, input.DestinationFileSystem, input.DestinationName); err != nil {
			if removeErr := input.DestinationFileSystem.Remove(ctx, input.DestinationName); removeErr != nil {
				return &RollbackError{Err: err, Rollback: removeErr}
			}
			return err
		}
	}

	if input.Logger != nil {
		input.Logger.Log("Done copying", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	return nil
}

// readSourceAttributes captures the source snapshot, preferring the POSIX
// model.  Only an unsupported model or denied access to security metadata
// triggers the fallback to the basic model; any other failure propagates.
func readSourceAttributes(ctx context.Context, fileSystem FileSystem, name string, followLinks bool) (*Attributes, error) {
	attributes, err := fileSystem.ReadAttributes(ctx, name, ModelPosix, followLinks)
	if err != nil {
		if errors.Is(err, ErrUnsupported) || errors.Is(err, ErrSecurityDenied) {
			return fileSystem.ReadAttributes(ctx, name, ModelBasic, followLinks)
		}
		return nil, err
	}
	return attributes, nil
}

// writeAttributes propagates the captured source snapshot onto the
// destination.  The POSIX view of the destination is preferred if the
// snapshot is POSIX, falling through to the basic view when the destination
// provider does not support the POSIX model.  A denied permission write is
// tolerated; every other failure is returned to the caller for rollback.
func writeAttributes(ctx context.Context, sourceAttributes *Attributes, fileSystem FileSystem, name string) error {
	var view AttributeView
	ok := false
	if sourceAttributes.Model == ModelPosix {
		view, ok = fileSystem.AttributeView(ctx, name, ModelPosix)
	}
	if !ok {
		view, ok = fileSystem.AttributeView(ctx, name, ModelBasic)
		if !ok {
			return fmt.Errorf("no attribute view available for destination %q: %w", name, ErrUnsupported)
		}
	}

	err := view.SetTimes(ctx, sourceAttributes.ModTime, sourceAttributes.AccessTime, sourceAttributes.CreateTime)
	if err != nil {
		return fmt.Errorf("error setting times on destination %q: %w", name, err)
	}

	if posixView, isPosix := view.(PosixAttributeView); isPosix && sourceAttributes.Model == ModelPosix {
		err := posixView.SetPermissions(ctx, sourceAttributes.Permissions)
		if err != nil && !errors.Is(err, ErrSecurityDenied) {
			return fmt.Errorf("error setting permissions on destination %q: %w", name, err)
		}
	}

	return nil
}

// makeParents creates the missing parent directories of name.
func makeParents(ctx context.Context, fileSystem FileSystem, name string) error {
	parent := fileSystem.Dir(name)
	if _, err := fileSystem.Stat(ctx, parent); err != nil {
		if !fileSystem.IsNotExist(err) {
			return fmt.Errorf("error stating destination parent %q: %w", parent, err)
		}
		if err := fileSystem.MkdirAll(ctx, parent, 0755); err != nil {
			return fmt.Errorf("error creating parent directories for %q: %w", name, err)
		}
	}
	return nil
}
