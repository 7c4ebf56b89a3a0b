// Package replay wraps the external replay-unpack collaborator. The
// binary .wowsreplay format itself is decoded entirely by that fork;
// this package only shells out to it and parses the packet stream it
// emits.
package replay

import (
	"context"
	"errors"
)

// Packet kinds emitted by the unpacker. Anything else is ignored.
const (
	KindChat   = "chat"
	KindPlayer = "player"
)

// SystemPlayerIDs mark server-generated messages that carry no sender.
var SystemPlayerIDs = map[int64]bool{0: true, -1: true}

// Packet is one decoded entity from the unpacker's JSONL stream.
// Fields are populated according to Kind.
type Packet struct {
	Kind string `json:"kind"`

	// chat packets
	PlayerID  int64   `json:"playerId,omitempty"`
	Namespace string  `json:"namespace,omitempty"`
	Message   string  `json:"message,omitempty"`
	Clock     float64 `json:"clock,omitempty"` // seconds since match start

	// player packets
	Name    string `json:"name,omitempty"`
	ClanTag string `json:"clanTag,omitempty"`
}

// ErrDecode is the single failure mode of the decoder boundary: the
// upload is not a replay, or the unpacker could not parse it.
var ErrDecode = errors.New("could not read replay")

// Decoder turns raw replay bytes into the decoded packet sequence.
type Decoder interface {
	Decode(ctx context.Context, data []byte) ([]Packet, error)
}
