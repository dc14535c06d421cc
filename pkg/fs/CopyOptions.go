// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// Option is a token that modifies the behavior of a copy or move operation.
// The zero value marks an absent option and is rejected during parsing.
type Option int

const (
	// OptionNone is the zero value.  It is not a valid option.
	OptionNone Option = iota
	// OptionReplaceExisting replaces the destination if it already exists.
	OptionReplaceExisting
	// OptionCopyAttributes copies the source attributes to the destination.
	OptionCopyAttributes
	// OptionNoFollowLinks does not dereference a terminal symbolic link
	// when reading the source attributes.
	OptionNoFollowLinks
	// OptionAtomicMove requests that a move be performed as a single atomic
	// operation.  Moves between providers always reject this option.
	OptionAtomicMove
)

func (o Option) String() string {
	switch o {
	case OptionReplaceExisting:
		return "REPLACE_EXISTING"
	case OptionCopyAttributes:
		return "COPY_ATTRIBUTES"
	case OptionNoFollowLinks:
		return "NOFOLLOW_LINKS"
	case OptionAtomicMove:
		return "ATOMIC_MOVE"
	}
	return "UNKNOWN"
}

// CopyOptions is the parsed form of a list of options for a copy operation.
// It is constructed once per operation by ParseCopyOptions and not modified
// afterwards.
type CopyOptions struct {
	ReplaceExisting bool
	CopyAttributes  bool
	FollowLinks     bool
}

// ParseCopyOptions parses the options for a copy operation.  Duplicate
// options are idempotent.  The zero option returns ErrNilOption and any
// option that is not a recognized copy option, including OptionAtomicMove,
// returns an UnsupportedOptionError.
func ParseCopyOptions(options ...Option) (*CopyOptions, error) {
	result := &CopyOptions{FollowLinks: true}
	for _, option := range options {
		switch option {
		case OptionReplaceExisting:
			result.ReplaceExisting = true
		case OptionCopyAttributes:
			result.CopyAttributes = true
		case OptionNoFollowLinks:
			result.FollowLinks = false
		case OptionNone:
			return nil, ErrNilOption
		default:
			return nil, &UnsupportedOptionError{Option: option}
		}
	}
	return result, nil
}

// ReplaceExistingOrEmpty returns a list containing OptionReplaceExisting if
// that flag is set and an empty list otherwise.  It is used to forward the
// overwrite intent to the byte-transfer primitive without re-exposing the
// other flags.
func (o *CopyOptions) ReplaceExistingOrEmpty() []Option {
	if o.ReplaceExisting {
		return []Option{OptionReplaceExisting}
	}
	return []Option{}
}
