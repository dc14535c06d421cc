// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// SimpleLogger writes each message and its fields as a line of JSON.
// Writes are serialized, so a single logger can be shared by the
// goroutines of a sync.
type SimpleLogger struct {
	writer io.Writer
	mutex  *sync.Mutex
}

func (l *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	m := map[string]interface{}{
		"msg": msg,
		"ts":  time.Now().Format(time.RFC3339),
	}
	for _, f := range fields {
		for k, v := range f {
			m[k] = v
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshaling log message: %w", err)
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if _, err := fmt.Fprintln(l.writer, string(b)); err != nil {
		return fmt.Errorf("error writing log message: %w", err)
	}
	return nil
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		writer: w,
		mutex:  &sync.Mutex{},
	}
}
