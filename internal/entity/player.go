package entity

const (
	HumanType = "human"
	BotType   = "bot"
)

type Player struct {
	Mark string `json:"mark,omitempty"`
	Type string `json:"type,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Type == BotType
}
