package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/106-/wows-chat-viewer/internal/model/chat"
	"github.com/106-/wows-chat-viewer/internal/replay"
)

type stubDecoder struct {
	packets []replay.Packet
	err     error
}

func (d stubDecoder) Decode(context.Context, []byte) ([]replay.Packet, error) {
	return d.packets, d.err
}

func samplePackets() []replay.Packet {
	return []replay.Packet{
		{Kind: replay.KindPlayer, PlayerID: 10, Name: "Yamato", ClanTag: "IJN"},
		{Kind: replay.KindPlayer, PlayerID: 11, Name: "Bismarck"},
		{Kind: replay.KindChat, PlayerID: 10, Namespace: "battle_team", Message: "cap A", Clock: 30},
		{Kind: "position", PlayerID: 10},
		{Kind: replay.KindChat, PlayerID: 11, Namespace: "battle_common", Message: "gl hf", Clock: 31.5},
		{Kind: replay.KindChat, PlayerID: 0, Namespace: "battle_common", Message: "system notice", Clock: 32},
		{Kind: replay.KindChat, PlayerID: 11, Namespace: "battle_team", Message: "   ", Clock: 33},
		{Kind: replay.KindChat, PlayerID: 99, Namespace: "battle_prebattle", Message: "o7", Clock: 34},
	}
}

func TestRecordsOrderAndNormalization(t *testing.T) {
	records := Records(samplePackets())
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Sender != "Yamato" || first.ClanTag != "IJN" {
		t.Fatalf("player join failed: %+v", first)
	}
	if first.Channel != chat.ChannelTeam || first.Timestamp != 30 {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if records[1].Channel != chat.ChannelAll {
		t.Fatalf("battle_common should map to all, got %s", records[1].Channel)
	}
	if records[2].Channel != chat.ChannelOther || records[2].Sender != "player:99" {
		t.Fatalf("unknown namespace/sender handling failed: %+v", records[2])
	}
}

func TestRecordsNeverEmptyText(t *testing.T) {
	for _, r := range Records(samplePackets()) {
		if r.Text == "" {
			t.Fatalf("record with empty text emitted: %+v", r)
		}
	}
}

func TestRecordsSkipsSystemSenders(t *testing.T) {
	packets := []replay.Packet{
		{Kind: replay.KindChat, PlayerID: 0, Namespace: "battle_common", Message: "a"},
		{Kind: replay.KindChat, PlayerID: -1, Namespace: "battle_common", Message: "b"},
	}
	if got := Records(packets); len(got) != 0 {
		t.Fatalf("expected system messages dropped, got %d", len(got))
	}
}

func TestExtractPropagatesDecodeError(t *testing.T) {
	ex := New(stubDecoder{err: replay.ErrDecode})
	_, err := ex.Extract(context.Background(), []byte("not a replay"))
	if !errors.Is(err, replay.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestNormalizeChannel(t *testing.T) {
	cases := []struct {
		namespace string
		want      chat.Channel
	}{
		{"battle_team", chat.ChannelTeam},
		{"Battle_Team", chat.ChannelTeam},
		{"battle_common", chat.ChannelAll},
		{"battle_all", chat.ChannelAll},
		{"battle_prebattle", chat.ChannelOther},
		{"", chat.ChannelOther},
	}
	for _, tc := range cases {
		if got := normalizeChannel(tc.namespace); got != tc.want {
			t.Fatalf("normalizeChannel(%q) = %s, want %s", tc.namespace, got, tc.want)
		}
	}
}
