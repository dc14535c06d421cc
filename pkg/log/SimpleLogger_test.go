// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := NewSimpleLogger(buf)

	require.NoError(t, logger.Log("Copying", map[string]interface{}{
		"src": "/tmp/a",
		"dst": "/tmp/b",
	}))

	line := strings.TrimSpace(buf.String())
	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(line), &m))
	assert.Equal(t, "Copying", m["msg"])
	assert.Equal(t, "/tmp/a", m["src"])
	assert.Equal(t, "/tmp/b", m["dst"])
	assert.Contains(t, m, "ts")
}

func TestSimpleLoggerNoFields(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := NewSimpleLogger(buf)

	require.NoError(t, logger.Log("Done"))

	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "Done", m["msg"])
}
