package ui

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bz888/tavish/internal/chat"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFormatting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"§aExecuted Minecraft command: /time set day", "[green]Executed Minecraft command: /time set day[-]"},
		{"§bAI: use [brackets]", "[aqua]AI: use [brackets[][-]"},
		{"§cError§r done", "[red]Error[-] done"},
		{"§kobfuscated", "obfuscated"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, renderFormatting(tt.in), tt.in)
	}
}

func TestStreamHostDispatch(t *testing.T) {
	var out bytes.Buffer
	loop := chat.NewMainLoop(8)
	host := NewStreamHost(loop, &out)

	host.Execute(func() { chat.Dispatch(host, "/give @s diamond_sword") })
	host.Execute(func() { chat.Dispatch(host, "#goto base") })
	host.Execute(func() { chat.Dispatch(host, "Diamonds are found below Y=16.") })
	loop.Close()
	require.NoError(t, loop.Run(context.Background()))

	assert.Equal(t, "> /give @s diamond_sword\n"+
		"Executed Minecraft command: /give @s diamond_sword\n"+
		"#goto base\n"+
		"Executed Baritone command: #goto base\n"+
		"AI: Diamonds are found below Y=16.\n", out.String())
}

func TestConsoleWithoutRunHasNoPlayer(t *testing.T) {
	c := NewConsole(false, "!ai ")

	_, ok := c.Player()
	assert.False(t, ok)

	ran := false
	c.Execute(func() { ran = true })
	assert.False(t, ran)
}

func TestConsolePlayerOutput(t *testing.T) {
	c := NewConsole(false, "!ai ")

	c.SendCommand("time set day")
	c.SendChat("#goto base")
	c.SendMessage("§aExecuted Baritone command: #goto base")

	assert.Equal(t, "> /time set day\n"+
		"<you> #goto base\n"+
		"Executed Baritone command: #goto base\n", c.textView.GetText(true))
}

func TestConsoleTypedLineBecomesChatMessage(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	c := NewConsole(false, "!ai ")
	c.app.SetScreen(screen)

	received := make(chan chat.Message, 1)
	c.OnMessage(func(ctx context.Context, msg chat.Message) {
		received <- msg
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	for _, r := range "!ai hi" {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	select {
	case msg := <-received:
		assert.Equal(t, chat.Message{Text: "!ai hi"}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("typed line was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not stop")
	}

	_, ok := c.Player()
	assert.False(t, ok)
}

func TestConsoleExecuteReturnsAfterShutdown(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	c := NewConsole(false, "!ai ")
	c.app.SetScreen(screen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, ok := c.Player()
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	busy := make(chan struct{})
	release := make(chan struct{})
	go c.Execute(func() {
		close(busy)
		<-release
	})
	<-busy

	cancel()
	pending := make(chan struct{})
	go func() {
		c.Execute(func() {})
		close(pending)
	}()
	close(release)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not stop")
	}

	select {
	case <-pending:
	case <-time.After(5 * time.Second):
		t.Fatal("Execute blocked after the console stopped")
	}

	ran := false
	c.Execute(func() { ran = true })
	assert.False(t, ran)
}
