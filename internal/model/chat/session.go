package chat

import "time"

// Session captures one uploaded replay's extracted chat for the
// lifetime of the viewer interaction.
type Session struct {
	ID         string    `json:"id"`
	ReplayName string    `json:"replayName"`
	CreatedAt  time.Time `json:"createdAt"`
}
