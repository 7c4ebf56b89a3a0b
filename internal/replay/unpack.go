package replay

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultBin is the forked replay-unpack CLI expected on PATH.
	DefaultBin = "replay-unpack"

	// DefaultTimeout bounds one decode run.
	DefaultTimeout = 30 * time.Second

	// maxPacketLine caps a single JSONL packet from the unpacker.
	maxPacketLine = 1 << 20
)

// Unpacker invokes the external replay-unpack binary. The replay is
// materialized to a temp file, the unpacker reads it and writes one
// JSON packet per stdout line.
type Unpacker struct {
	bin     string
	timeout time.Duration
}

// NewUnpacker builds an Unpacker around the given binary path.
// Empty bin or non-positive timeout fall back to defaults.
func NewUnpacker(bin string, timeout time.Duration) *Unpacker {
	if bin == "" {
		bin = DefaultBin
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Unpacker{bin: bin, timeout: timeout}
}

// Decode runs the unpacker over the raw replay bytes. Any failure of
// the external process or its output stream reports ErrDecode.
func (u *Unpacker) Decode(ctx context.Context, data []byte) ([]Packet, error) {
	tmp, err := os.CreateTemp("", "*.wowsreplay")
	if err != nil {
		return nil, fmt.Errorf("replay: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("replay: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("replay: close temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, u.bin, "--output", "jsonl", tmp.Name())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: unpacker timed out", ErrDecode)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrDecode, detail)
	}

	return ParsePackets(&stdout)
}

// ParsePackets reads the unpacker's JSONL stream in transmission
// order. Blank lines are skipped; a malformed line fails the whole
// decode, matching the unpacker's strict mode.
func ParsePackets(r io.Reader) ([]Packet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPacketLine)

	var packets []Packet
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var p Packet
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("%w: malformed packet: %v", ErrDecode, err)
		}
		packets = append(packets, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return packets, nil
}
