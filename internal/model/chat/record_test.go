package chat

import "testing"

func TestParseChannel(t *testing.T) {
	cases := []struct {
		in   string
		want Channel
		ok   bool
	}{
		{"team", ChannelTeam, true},
		{" ALL ", ChannelAll, true},
		{"other", ChannelOther, true},
		{"division", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseChannel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseChannel(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	record := Record{Sender: "Yamato", Channel: ChannelTeam, Timestamp: 30, Text: "Push the B cap"}

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"channel match", Filter{Channel: ChannelTeam}, true},
		{"channel mismatch", Filter{Channel: ChannelAll}, false},
		{"sender case-insensitive", Filter{Sender: "yamato"}, true},
		{"sender mismatch", Filter{Sender: "Iowa"}, false},
		{"text substring case-insensitive", Filter{Text: "b cap"}, true},
		{"text mismatch", Filter{Text: "retreat"}, false},
		{"combined", Filter{Channel: ChannelTeam, Sender: "Yamato", Text: "push"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Match(record); got != tc.want {
				t.Fatalf("Match = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Fatal("zero filter should be empty")
	}
	if (Filter{Channel: ChannelAll}).Empty() {
		t.Fatal("channel filter should not be empty")
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Record{Sender: "Yamato", ClanTag: "IJN"}).DisplayName(); got != "[IJN] Yamato" {
		t.Fatalf("unexpected display name: %q", got)
	}
	if got := (Record{Sender: "Iowa"}).DisplayName(); got != "Iowa" {
		t.Fatalf("unexpected display name: %q", got)
	}
}

func TestAggregate(t *testing.T) {
	stats := Aggregate([]Record{
		{Sender: "Yamato", Channel: ChannelTeam, Text: "a"},
		{Sender: "Yamato", Channel: ChannelTeam, Text: "b"},
		{Sender: "Iowa", Channel: ChannelAll, Text: "c"},
	})

	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.Channels[ChannelTeam] != 2 || stats.Channels[ChannelAll] != 1 || stats.Channels[ChannelOther] != 0 {
		t.Fatalf("unexpected channel counts: %+v", stats.Channels)
	}
	if stats.Senders["Yamato"] != 2 || stats.Senders["Iowa"] != 1 {
		t.Fatalf("unexpected sender counts: %+v", stats.Senders)
	}
	if stats.UniqueSenders != 2 {
		t.Fatalf("expected 2 unique senders, got %d", stats.UniqueSenders)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.Total != 0 || stats.UniqueSenders != 0 {
		t.Fatalf("unexpected stats for empty input: %+v", stats)
	}
	for channel, n := range stats.Channels {
		if n != 0 {
			t.Fatalf("expected zero count for %s, got %d", channel, n)
		}
	}
}
