package ui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bz888/tavish/internal/chat"
	"github.com/bz888/tavish/internal/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Console is a terminal chat client acting as the host. Typed lines become
// incoming chat messages; the tview event loop is the main execution context.
type Console struct {
	app          *tview.Application
	textView     *tview.TextView
	textArea     *tview.TextArea
	debugConsole *tview.TextView
	mainFlex     *tview.Flex
	debugShown   bool
	trigger      string
	connected    atomic.Bool
	stopped      chan struct{}

	ctx         context.Context
	onMessage   func(ctx context.Context, msg chat.Message)
	listModels  func(ctx context.Context) ([]string, error)
	localLogger *logger.Logger
}

func NewConsole(dev bool, trigger string) *Console {
	c := &Console{
		app:         tview.NewApplication(),
		debugShown:  dev,
		trigger:     trigger,
		ctx:         context.Background(),
		stopped:     make(chan struct{}),
		localLogger: logger.NewLogger("views"),
	}
	c.app.EnablePaste(true)
	c.app.EnableMouse(true)

	c.debugConsole = c.initDebugConsole()
	c.textView = c.initChatViewer()
	c.textArea = c.initChatInput()
	return c
}

func (c *Console) initChatViewer() *tview.TextView {
	textView := tview.NewTextView().
		SetChangedFunc(func() {
			c.app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetTitle("Chat").SetBorder(true)
	textView.SetScrollable(true)
	textView.ScrollToEnd()
	return textView
}

func (c *Console) initChatInput() *tview.TextArea {
	textArea := tview.NewTextArea()
	textArea.SetTitle("Message").SetBorder(true)
	return textArea
}

func (c *Console) initDebugConsole() *tview.TextView {
	console := tview.NewTextView().
		SetChangedFunc(func() {
			c.app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	console.SetTitle("Debugger").SetBorder(true)
	console.ScrollToEnd()
	return console
}

// DebugConsole is the view dev-mode log lines are written to.
func (c *Console) DebugConsole() *tview.TextView {
	return c.debugConsole
}

// OnMessage sets the callback receiving every typed chat line.
func (c *Console) OnMessage(fn func(ctx context.Context, msg chat.Message)) {
	c.onMessage = fn
}

// SetModelLister sets the source used by /models.
func (c *Console) SetModelLister(fn func(ctx context.Context) ([]string, error)) {
	c.listModels = fn
}

// Run blocks until the user quits or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.ctx = ctx
	c.localLogger = logger.NewLogger("views")

	c.textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			c.app.SetFocus(c.textArea)
		}
		return event
	})

	subFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(c.textView, 0, 1, false).
		AddItem(c.textArea, 5, 2, true)
	c.mainFlex = tview.NewFlex().
		AddItem(subFlex, 0, 2, true)

	if c.debugShown {
		c.mainFlex.AddItem(c.debugConsole, 0, 1, false)
	}

	c.setInputCapture()

	go func() {
		<-ctx.Done()
		c.app.Stop()
	}()

	c.connected.Store(true)
	defer func() {
		c.connected.Store(false)
		close(c.stopped)
	}()

	fmt.Fprintf(c.textView, "[aqua]Start a message with %q to ask the AI. /help lists console commands.[-]\n\n", c.trigger)

	return c.app.SetRoot(c.mainFlex, true).SetFocus(c.textArea).Run()
}

func (c *Console) setInputCapture() {
	c.textArea.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyESC:
			if c.textView.GetText(false) != "" {
				c.app.SetFocus(c.textView)
			}
		case tcell.KeyEnter:
			content := strings.TrimSpace(c.textArea.GetText())
			c.textArea.SetText("", true)
			if content == "" {
				return nil
			}

			switch content {
			case "/help":
				c.listHelp()
				return nil
			case "/bye":
				c.quitApp()
				return nil
			case "/debug":
				c.toggleDebugConsole()
				return nil
			case "/models":
				go c.showModels()
				return nil
			}

			fmt.Fprintf(c.textView, "[white::b]<you>[-::-] %s\n", tview.Escape(content))
			if c.onMessage != nil {
				c.onMessage(c.ctx, chat.Message{Text: content})
			}
			return nil
		}
		return event
	})
}

// Execute queues task on the tview event loop and waits for it to run. Tasks
// are dropped once the console has stopped, including tasks still queued when
// the event loop exits.
func (c *Console) Execute(task func()) {
	if !c.connected.Load() {
		return
	}
	done := make(chan struct{})
	go func() {
		c.app.QueueUpdateDraw(task)
		close(done)
	}()
	select {
	case <-done:
	case <-c.stopped:
	}
}

func (c *Console) Player() (chat.Player, bool) {
	if !c.connected.Load() {
		return nil, false
	}
	return c, true
}

func (c *Console) SendCommand(command string) {
	c.localLogger.Info("Command submitted:", command)
	fmt.Fprintf(c.textView, "[gray]> /%s[-]\n", tview.Escape(command))
}

func (c *Console) SendChat(line string) {
	fmt.Fprintf(c.textView, "[white::b]<you>[-::-] %s\n", tview.Escape(line))
}

func (c *Console) SendMessage(text string) {
	fmt.Fprintln(c.textView, renderFormatting(text))
}

func (c *Console) showModels() {
	if c.listModels == nil {
		return
	}
	models, err := c.listModels(c.ctx)
	c.Execute(func() {
		if err != nil {
			c.localLogger.Error("Failed to list models:", err)
			fmt.Fprintf(c.textView, "[red]Failed to list models: %s[-]\n\n", tview.Escape(err.Error()))
			return
		}
		fmt.Fprintf(c.textView, "[green::]Installed models:[-]\n")
		for _, model := range models {
			fmt.Fprintf(c.textView, "- %s\n", tview.Escape(model))
		}
		fmt.Fprintln(c.textView)
	})
}

func (c *Console) toggleDebugConsole() {
	if c.debugShown {
		c.mainFlex.RemoveItem(c.debugConsole)
		fmt.Fprintf(c.textView, "\nDebug console disabled\n")
	} else {
		c.mainFlex.AddItem(c.debugConsole, 0, 1, false)
		fmt.Fprintf(c.textView, "\nDebug console enabled\n")
	}
	c.debugShown = !c.debugShown
}

func (c *Console) quitApp() {
	fmt.Fprintf(c.textView, "Bye bye\n")
	c.connected.Store(false)
	c.app.Stop()
}

func (c *Console) listHelp() {
	fmt.Fprintf(c.textView, "[green::]Console commands:[-]\n")
	fmt.Fprintf(c.textView, "- %s<request>: Ask the AI\n", tview.Escape(c.trigger))
	fmt.Fprintf(c.textView, "- /help: Display this help message\n")
	fmt.Fprintf(c.textView, "- /bye: Exit the application\n")
	fmt.Fprintf(c.textView, "- /debug: Toggle the debug console\n")
	fmt.Fprintf(c.textView, "- /models: List the models installed in Ollama\n\n")
}
