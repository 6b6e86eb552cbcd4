package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) SendCommand(command string) {
	m.Called(command)
}

func (m *MockPlayer) SendChat(line string) {
	m.Called(line)
}

func (m *MockPlayer) SendMessage(text string) {
	m.Called(text)
}

type MockInference struct {
	mock.Mock
}

func (m *MockInference) Ask(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

// testHost runs tasks on a MainLoop and hands out a fixed player.
type testHost struct {
	*MainLoop
	player    Player
	connected bool
	done      chan struct{}
}

func newTestHost(player Player, connected bool) *testHost {
	h := &testHost{
		MainLoop:  NewMainLoop(16),
		player:    player,
		connected: connected,
		done:      make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		h.Run(context.Background())
	}()
	return h
}

func (h *testHost) Player() (Player, bool) {
	return h.player, h.connected
}

// drain stops the loop after every queued task has run.
func (h *testHost) drain() {
	h.Close()
	<-h.done
}
