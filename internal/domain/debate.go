package domain

// DebateReport is a caller-supplied transcript of a finished debate
// session. It is rendered into a mail body as-is and never stored.
type DebateReport struct {
	Topic    string          `json:"topic"`
	Date     string          `json:"date"`
	Messages []DebateMessage `json:"messages"`
}

type DebateMessage struct {
	Spirit    *SpiritRef `json:"spirit"`
	Side      string     `json:"side"`
	Content   string     `json:"content"`
	Timestamp string     `json:"timestamp"`
}

type SpiritRef struct {
	Name string `json:"name"`
}

const (
	SidePro   = "pro"
	SideCon   = "con"
	SideJudge = "judge"
)

func (m DebateMessage) SpeakerName() string {
	if m.Spirit != nil && m.Spirit.Name != "" {
		return m.Spirit.Name
	}
	return "系統"
}
