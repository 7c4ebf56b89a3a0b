// Package extract turns the decoder's packet sequence into normalized
// chat records.
package extract

import (
	"context"
	"strconv"
	"strings"

	"github.com/106-/wows-chat-viewer/internal/model/chat"
	"github.com/106-/wows-chat-viewer/internal/replay"
)

// Extractor drives one decode-and-normalize pass per upload.
type Extractor struct {
	decoder replay.Decoder
}

// New wires the extractor to a decoder implementation.
func New(decoder replay.Decoder) *Extractor {
	return &Extractor{decoder: decoder}
}

// Extract decodes raw replay bytes and returns chat records in
// original transmission order. Decoder failures pass through
// unchanged so the boundary can match replay.ErrDecode.
func (e *Extractor) Extract(ctx context.Context, data []byte) ([]chat.Record, error) {
	packets, err := e.decoder.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return Records(packets), nil
}

type playerInfo struct {
	name    string
	clanTag string
}

// Records filters the packet sequence down to chat entries. System
// senders and messages that normalize to empty text are dropped.
// Sender names resolve against player packets from the same replay;
// ids the roster never announced render as "player:<id>".
func Records(packets []replay.Packet) []chat.Record {
	players := make(map[int64]playerInfo)
	for _, p := range packets {
		if p.Kind == replay.KindPlayer {
			players[p.PlayerID] = playerInfo{name: p.Name, clanTag: p.ClanTag}
		}
	}

	records := make([]chat.Record, 0, len(packets))
	for _, p := range packets {
		if p.Kind != replay.KindChat {
			continue
		}
		if replay.SystemPlayerIDs[p.PlayerID] {
			continue
		}
		text := strings.TrimSpace(p.Message)
		if text == "" {
			continue
		}

		record := chat.Record{
			Sender:    "player:" + strconv.FormatInt(p.PlayerID, 10),
			Channel:   normalizeChannel(p.Namespace),
			Timestamp: p.Clock,
			Text:      text,
		}
		if info, ok := players[p.PlayerID]; ok && info.name != "" {
			record.Sender = info.name
			record.ClanTag = info.clanTag
		}
		records = append(records, record)
	}
	return records
}

// normalizeChannel maps the game's chat namespaces onto the viewer's
// channel taxonomy. Unknown namespaces (division, pre-battle, ...)
// land in "other" rather than being dropped.
func normalizeChannel(namespace string) chat.Channel {
	switch strings.ToLower(strings.TrimSpace(namespace)) {
	case "battle_team":
		return chat.ChannelTeam
	case "battle_common", "battle_all":
		return chat.ChannelAll
	default:
		return chat.ChannelOther
	}
}
