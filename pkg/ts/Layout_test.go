// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLayout(t *testing.T) {
	assert.Equal(t, Layout(time.RFC3339), ParseLayout("RFC3339"))
	assert.Equal(t, Layout("2006-01-02"), ParseLayout("2006-01-02"))
}

func TestLayoutFormat(t *testing.T) {
	moment := time.Date(2020, time.March, 10, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 10 12:30", ParseLayout("Default").Format(moment))
}

func TestParseLocation(t *testing.T) {
	location, err := ParseLocation("Local")
	assert.NoError(t, err)
	assert.Equal(t, time.Local, location)

	location, err = ParseLocation("-5")
	assert.NoError(t, err)
	assert.Equal(t, "UTC-5", location.String())

	_, err = ParseLocation("")
	assert.Error(t, err)
}
