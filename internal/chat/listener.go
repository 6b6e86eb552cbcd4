package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bz888/tavish/internal/logger"
	"github.com/google/uuid"
)

// Inference turns a prompt into a displayable response. Implementations
// report their own failures in-band.
type Inference interface {
	Ask(ctx context.Context, prompt string) string
}

// Listener watches incoming chat for the trigger and forwards prompts.
type Listener struct {
	trigger string
	ai      Inference
	host    Host
	log     *logger.Logger
	wg      sync.WaitGroup
}

func NewListener(trigger string, ai Inference, host Host, log *logger.Logger) *Listener {
	return &Listener{
		trigger: trigger,
		ai:      ai,
		host:    host,
		log:     log,
	}
}

// ExtractPrompt returns the trimmed text after trigger. Overlay messages and
// messages not starting with the exact trigger are rejected.
func ExtractPrompt(trigger string, msg Message) (string, bool) {
	if msg.Overlay || !strings.HasPrefix(msg.Text, trigger) {
		return "", false
	}
	return strings.TrimSpace(msg.Text[len(trigger):]), true
}

// HandleMessage is the chat event callback. Matching messages start one
// background request each; the response is dispatched on the host's main
// execution context.
func (l *Listener) HandleMessage(ctx context.Context, msg Message) {
	prompt, ok := ExtractPrompt(l.trigger, msg)
	if !ok {
		return
	}
	l.submit(ctx, prompt)
}

// Wait blocks until every submitted prompt has handed its result to the host.
func (l *Listener) Wait() {
	l.wg.Wait()
}

func (l *Listener) submit(ctx context.Context, prompt string) {
	log := l.log.With("request", uuid.NewString())
	log.Info("Prompt received:", prompt)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		response, err := l.ask(ctx, prompt)
		if err != nil {
			log.Error("Failed to get response from Ollama:", err)
			l.host.Execute(func() { reportFailure(l.host, err) })
			return
		}

		log.Info("Response received:", response)
		l.host.Execute(func() { Dispatch(l.host, response) })
	}()
}

func (l *Listener) ask(ctx context.Context, prompt string) (response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return l.ai.Ask(ctx, prompt), nil
}
