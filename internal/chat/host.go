package chat

// Message is an incoming chat event.
type Message struct {
	Text string
	// Overlay marks system notifications that are not chat.
	Overlay bool
}

// Player is the in-game side of the host. Its methods must only be called
// from the host's main execution context.
type Player interface {
	// SendCommand submits a game command, without its leading slash.
	SendCommand(command string)
	// SendChat sends a line to chat as if the player typed it.
	SendChat(line string)
	// SendMessage shows a local message to the player.
	SendMessage(text string)
}

// Host is the runtime the bridge is loaded into.
type Host interface {
	// Execute runs task on the host's main execution context.
	Execute(task func())
	// Player returns the current player, or false when none is connected.
	Player() (Player, bool)
}
