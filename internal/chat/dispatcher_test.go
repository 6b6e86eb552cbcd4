package chat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
)

type staticHost struct {
	player    Player
	connected bool
}

func (h staticHost) Execute(task func()) { task() }

func (h staticHost) Player() (Player, bool) { return h.player, h.connected }

func TestDispatchMinecraftCommand(t *testing.T) {
	player := new(MockPlayer)
	player.On("SendCommand", "give @s diamond_sword").Once()
	player.On("SendMessage", "§aExecuted Minecraft command: /give @s diamond_sword").Once()

	Dispatch(staticHost{player: player, connected: true}, "/give @s diamond_sword")

	player.AssertExpectations(t)
	player.AssertNotCalled(t, "SendChat", mock.Anything)
}

func TestDispatchBaritoneCommand(t *testing.T) {
	player := new(MockPlayer)
	player.On("SendChat", "#goto base").Once()
	player.On("SendMessage", "§aExecuted Baritone command: #goto base").Once()

	Dispatch(staticHost{player: player, connected: true}, "#goto base")

	player.AssertExpectations(t)
	player.AssertNotCalled(t, "SendCommand", mock.Anything)
}

func TestDispatchPlainAnswer(t *testing.T) {
	player := new(MockPlayer)
	player.On("SendMessage", mock.AnythingOfType("string")).Once()

	Dispatch(staticHost{player: player, connected: true}, "Diamonds are found below Y=16.")

	player.AssertExpectations(t)
	text := player.Calls[0].Arguments.String(0)
	if got := StripFormatting(text); got != "AI: Diamonds are found below Y=16." {
		t.Fatalf("unexpected message: %q", got)
	}
	player.AssertNotCalled(t, "SendCommand", mock.Anything)
	player.AssertNotCalled(t, "SendChat", mock.Anything)
}

func TestDispatchErrorStringsAreNotCommands(t *testing.T) {
	player := new(MockPlayer)
	player.On("SendMessage", "§bAI: AI API Error: Status 500").Once()

	Dispatch(staticHost{player: player, connected: true}, "AI API Error: Status 500")

	player.AssertExpectations(t)
	player.AssertNotCalled(t, "SendCommand", mock.Anything)
}

func TestDispatchWithoutPlayerIsSilent(t *testing.T) {
	player := new(MockPlayer)

	Dispatch(staticHost{player: player, connected: false}, "/kill @e")
	reportFailure(staticHost{player: player, connected: false}, errors.New("boom"))

	player.AssertNotCalled(t, "SendCommand", mock.Anything)
	player.AssertNotCalled(t, "SendChat", mock.Anything)
	player.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestReportFailure(t *testing.T) {
	player := new(MockPlayer)
	player.On("SendMessage", "§cError contacting AI: worker died").Once()

	reportFailure(staticHost{player: player, connected: true}, errors.New("worker died"))

	player.AssertExpectations(t)
}
