// Package export renders a record sequence into downloadable bytes.
// Both formats are deterministic: equal input yields identical output.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/106-/wows-chat-viewer/internal/model/chat"
)

// Formats accepted by the export endpoint.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// Text renders one line per record as "[MM:SS] channel/sender: text",
// newline-separated, in the order given.
func Text(records []chat.Record) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		fmt.Fprintf(&buf, "[%s] %s/%s: %s\n", Clock(r.Timestamp), r.Channel, r.DisplayName(), r.Text)
	}
	return buf.Bytes()
}

// JSONL renders one JSON object per record, the original viewer's
// download format.
func JSONL(records []chat.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("export: encode record: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// Clock formats a seconds offset into the match as MM:SS, growing to
// H:MM:SS past an hour. Negative offsets clamp to zero.
func Clock(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Filename derives the download name from the uploaded replay's name,
// stripping anything path-like.
func Filename(replayName, format string) string {
	base := replayName
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if base == "" {
		base = "replay"
	}
	ext := "txt"
	if format == FormatJSONL {
		ext = "jsonl"
	}
	return base + "_chat." + ext
}
