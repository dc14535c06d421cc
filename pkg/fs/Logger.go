// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

// Logger receives progress events from Copy, Move, and Sync.
// A nil Logger disables logging.
type Logger interface {
	Log(msg string, fields ...map[string]interface{}) error
}
