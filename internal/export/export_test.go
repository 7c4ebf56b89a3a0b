package export_test

import (
	"bytes"
	"testing"

	"github.com/106-/wows-chat-viewer/internal/export"
	"github.com/106-/wows-chat-viewer/internal/model/chat"
)

func sampleRecords() []chat.Record {
	return []chat.Record{
		{Sender: "Yamato", ClanTag: "IJN", Channel: chat.ChannelTeam, Timestamp: 30, Text: "cap A"},
		{Sender: "Iowa", Channel: chat.ChannelAll, Timestamp: 92.7, Text: "gl hf"},
	}
}

func TestTextFormat(t *testing.T) {
	got := string(export.Text(sampleRecords()))
	want := "[00:30] team/[IJN] Yamato: cap A\n[01:32] all/Iowa: gl hf\n"
	if got != want {
		t.Fatalf("unexpected export:\ngot  %q\nwant %q", got, want)
	}
}

func TestTextIdempotent(t *testing.T) {
	records := sampleRecords()
	first := export.Text(records)
	second := export.Text(records)
	if !bytes.Equal(first, second) {
		t.Fatal("repeated export produced different bytes")
	}
}

func TestTextEmpty(t *testing.T) {
	if got := export.Text(nil); len(got) != 0 {
		t.Fatalf("expected empty export, got %q", got)
	}
}

func TestJSONL(t *testing.T) {
	got, err := export.JSONL(sampleRecords())
	if err != nil {
		t.Fatalf("JSONL err: %v", err)
	}
	lines := bytes.Split(bytes.TrimRight(got, "\n"), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !bytes.Contains(lines[0], []byte(`"sender":"Yamato"`)) {
		t.Fatalf("unexpected first line: %s", lines[0])
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{92.7, "01:32"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-5, "00:00"},
	}
	for _, tc := range cases {
		if got := export.Clock(tc.seconds); got != tc.want {
			t.Fatalf("Clock(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name   string
		format string
		want   string
	}{
		{"match.wowsreplay", export.FormatText, "match.wowsreplay_chat.txt"},
		{"match.wowsreplay", export.FormatJSONL, "match.wowsreplay_chat.jsonl"},
		{`C:\replays\match.wowsreplay`, export.FormatText, "match.wowsreplay_chat.txt"},
		{"", export.FormatText, "replay_chat.txt"},
	}
	for _, tc := range cases {
		if got := export.Filename(tc.name, tc.format); got != tc.want {
			t.Fatalf("Filename(%q, %q) = %q, want %q", tc.name, tc.format, got, tc.want)
		}
	}
}
