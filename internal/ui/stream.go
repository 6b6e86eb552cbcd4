package ui

import (
	"fmt"
	"io"

	"github.com/bz888/tavish/internal/chat"
)

// StreamHost is a headless host writing everything to out. Its main
// execution context is a chat.MainLoop.
type StreamHost struct {
	loop *chat.MainLoop
	out  io.Writer
}

func NewStreamHost(loop *chat.MainLoop, out io.Writer) *StreamHost {
	return &StreamHost{loop: loop, out: out}
}

func (s *StreamHost) Execute(task func()) {
	s.loop.Execute(task)
}

func (s *StreamHost) Player() (chat.Player, bool) {
	return s, true
}

func (s *StreamHost) SendCommand(command string) {
	fmt.Fprintf(s.out, "> /%s\n", command)
}

func (s *StreamHost) SendChat(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *StreamHost) SendMessage(text string) {
	fmt.Fprintln(s.out, chat.StripFormatting(text))
}
