package chat

import "strings"

// Channel is the broadcast scope of an in-match message.
type Channel string

const (
	ChannelTeam  Channel = "team"
	ChannelAll   Channel = "all"
	ChannelOther Channel = "other"
)

// ParseChannel maps a query/form value onto a known channel.
func ParseChannel(value string) (Channel, bool) {
	switch Channel(strings.ToLower(strings.TrimSpace(value))) {
	case ChannelTeam:
		return ChannelTeam, true
	case ChannelAll:
		return ChannelAll, true
	case ChannelOther:
		return ChannelOther, true
	default:
		return "", false
	}
}

// Record is one normalized chat message extracted from a replay.
// Immutable once created; Text is never empty.
type Record struct {
	Sender    string  `json:"sender"`
	ClanTag   string  `json:"clanTag,omitempty"`
	Channel   Channel `json:"channel"`
	Timestamp float64 `json:"timestamp"` // seconds since match start
	Text      string  `json:"text"`
}

// DisplayName renders the sender the way the in-game UI does,
// clan tag first when the player has one.
func (r Record) DisplayName() string {
	if r.ClanTag == "" {
		return r.Sender
	}
	return "[" + r.ClanTag + "] " + r.Sender
}

// Filter narrows a record sequence for one rendering pass.
// Zero value matches everything.
type Filter struct {
	Channel Channel `json:"channel,omitempty"`
	Sender  string  `json:"sender,omitempty"`
	Text    string  `json:"text,omitempty"`
}

// Empty reports whether the filter constrains nothing.
func (f Filter) Empty() bool {
	return f.Channel == "" && f.Sender == "" && f.Text == ""
}

// Match reports whether the record passes every set constraint.
func (f Filter) Match(r Record) bool {
	if f.Channel != "" && r.Channel != f.Channel {
		return false
	}
	if f.Sender != "" && !strings.EqualFold(r.Sender, f.Sender) {
		return false
	}
	if f.Text != "" && !strings.Contains(strings.ToLower(r.Text), strings.ToLower(f.Text)) {
		return false
	}
	return true
}

// Stats aggregates one session's records.
type Stats struct {
	Total         int             `json:"total"`
	Channels      map[Channel]int `json:"channels"`
	Senders       map[string]int  `json:"senders"`
	UniqueSenders int             `json:"uniqueSenders"`
}

// Aggregate computes counts over records in a single pass.
func Aggregate(records []Record) Stats {
	stats := Stats{
		Channels: map[Channel]int{
			ChannelTeam:  0,
			ChannelAll:   0,
			ChannelOther: 0,
		},
		Senders: make(map[string]int),
	}
	for _, r := range records {
		stats.Total++
		stats.Channels[r.Channel]++
		stats.Senders[r.Sender]++
	}
	stats.UniqueSenders = len(stats.Senders)
	return stats
}
