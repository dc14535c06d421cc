// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCopyOptionsEmpty(t *testing.T) {
	opts, err := ParseCopyOptions()
	require.NoError(t, err)
	assert.False(t, opts.ReplaceExisting)
	assert.False(t, opts.CopyAttributes)
	assert.True(t, opts.FollowLinks)
}

func TestParseCopyOptions(t *testing.T) {
	opts, err := ParseCopyOptions(OptionReplaceExisting, OptionCopyAttributes, OptionNoFollowLinks)
	require.NoError(t, err)
	assert.True(t, opts.ReplaceExisting)
	assert.True(t, opts.CopyAttributes)
	assert.False(t, opts.FollowLinks)
}

func TestParseCopyOptionsDuplicates(t *testing.T) {
	opts, err := ParseCopyOptions(OptionReplaceExisting, OptionReplaceExisting)
	require.NoError(t, err)
	assert.True(t, opts.ReplaceExisting)
}

func TestParseCopyOptionsNil(t *testing.T) {
	_, err := ParseCopyOptions(OptionReplaceExisting, OptionNone)
	assert.ErrorIs(t, err, ErrNilOption)
}

func TestParseCopyOptionsAtomicMove(t *testing.T) {
	_, err := ParseCopyOptions(OptionAtomicMove)
	require.Error(t, err)
	unsupportedOptionError := &UnsupportedOptionError{}
	require.True(t, errors.As(err, &unsupportedOptionError))
	assert.Equal(t, OptionAtomicMove, unsupportedOptionError.Option)
}

func TestParseCopyOptionsUnknown(t *testing.T) {
	_, err := ParseCopyOptions(Option(42))
	require.Error(t, err)
	unsupportedOptionError := &UnsupportedOptionError{}
	require.True(t, errors.As(err, &unsupportedOptionError))
	assert.Equal(t, Option(42), unsupportedOptionError.Option)
	assert.Equal(t, "\"UNKNOWN\" is not a recognized copy option", err.Error())
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "REPLACE_EXISTING", OptionReplaceExisting.String())
	assert.Equal(t, "COPY_ATTRIBUTES", OptionCopyAttributes.String())
	assert.Equal(t, "NOFOLLOW_LINKS", OptionNoFollowLinks.String())
	assert.Equal(t, "ATOMIC_MOVE", OptionAtomicMove.String())
	assert.Equal(t, "UNKNOWN", OptionNone.String())
}

func TestReplaceExistingOrEmpty(t *testing.T) {
	opts, err := ParseCopyOptions(OptionReplaceExisting, OptionCopyAttributes)
	require.NoError(t, err)
	assert.Equal(t, []Option{OptionReplaceExisting}, opts.ReplaceExistingOrEmpty())

	opts, err = ParseCopyOptions(OptionCopyAttributes)
	require.NoError(t, err)
	assert.Equal(t, []Option{}, opts.ReplaceExistingOrEmpty())
}
