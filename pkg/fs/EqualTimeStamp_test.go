// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqualTimestamp(t *testing.T) {
	a := time.Date(2020, time.March, 10, 12, 0, 0, 100, time.UTC)
	b := time.Date(2020, time.March, 10, 12, 0, 0, 900, time.UTC)
	assert.True(t, EqualTimestamp(a, b, time.Second))
	assert.False(t, EqualTimestamp(a, b, time.Nanosecond))
	assert.False(t, EqualTimestamp(a, b.Add(time.Minute), time.Second))
}
