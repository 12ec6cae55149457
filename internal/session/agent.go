package session

// Output abstracts where prompts and echoes go.
type Output interface {
	// Newline writes a line break.
	Newline()
	// Println writes the string followed by a line break.
	Println(s string)
	// Print writes the string with no terminator.
	Print(s string)
}

// Input abstracts who answers the game's questions; humans and the computer
// policy both satisfy it. Implementations echo their answer to the output so
// transcripts read the same either way.
type Input interface {
	// ReadYesNo returns "Y" or "N".
	ReadYesNo(output Output) string
	// ReadInt returns a value within [min, max].
	ReadInt(output Output, min, max int) int
}

// PlayerAgent pairs a series player with their input source and queues the
// announcements addressed to them until the front end next shows them.
type PlayerAgent struct {
	Name  string
	Input Input

	pendingAnnouncements []Announcement
}

// NewPlayerAgent builds the agent for one player.
func NewPlayerAgent(name string, input Input) *PlayerAgent {
	return &PlayerAgent{Name: name, Input: input}
}

// Announce queues an announcement for this player's next update.
func (a *PlayerAgent) Announce(announcement Announcement) {
	a.pendingAnnouncements = append(a.pendingAnnouncements, announcement)
}

// PublishAnnouncements drains and returns this player's queue.
func (a *PlayerAgent) PublishAnnouncements() []Announcement {
	result := a.pendingAnnouncements
	a.pendingAnnouncements = nil
	return result
}

// ResetAnnouncements clears the queue, used when a new game starts.
func (a *PlayerAgent) ResetAnnouncements() {
	a.pendingAnnouncements = nil
}

type playerAgents []*PlayerAgent

// announce broadcasts to every player. Everything except dividends is
// broadcast.
func (agents playerAgents) announce(announcement Announcement) {
	for _, a := range agents {
		a.Announce(announcement)
	}
}

func (agents playerAgents) resetAnnouncements() {
	for _, a := range agents {
		a.ResetAnnouncements()
	}
}
