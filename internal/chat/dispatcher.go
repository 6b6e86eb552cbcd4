package chat

import "strings"

// Dispatch applies an AI response to the game. It must run on the host's
// main execution context. Without a player the response is dropped.
func Dispatch(host Host, response string) {
	player, ok := host.Player()
	if !ok {
		return
	}

	switch {
	case strings.HasPrefix(response, "/"):
		player.SendCommand(response[1:])
		player.SendMessage(Green + "Executed Minecraft command: " + response)
	case strings.HasPrefix(response, "#"):
		player.SendChat(response)
		player.SendMessage(Green + "Executed Baritone command: " + response)
	default:
		player.SendMessage(Aqua + "AI: " + response)
	}
}

func reportFailure(host Host, err error) {
	player, ok := host.Player()
	if !ok {
		return
	}
	player.SendMessage(Red + "Error contacting AI: " + err.Error())
}
