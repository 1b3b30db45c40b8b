package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{}

// counter counts key presses and, on "t", chains a batch of two ticks.
type counter struct {
	keys  int
	ticks int
}

func (c *counter) Init() tea.Cmd { return func() tea.Msg { return tickMsg{} } }

func (c *counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		c.ticks++
	case tea.KeyMsg:
		c.keys++
		switch msg.String() {
		case "t":
			tick := func() tea.Msg { return tickMsg{} }
			return c, tea.Batch(tick, tick)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c *counter) View() string { return fmt.Sprintf("keys=%d ticks=%d", c.keys, c.ticks) }

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	assert.Equal(t, 1, c.ticks)

	d.PressKey('t')
	assert.Equal(t, 3, c.ticks)
	d.AssertViewContains("keys=1 ticks=3")
}

func TestDriver_IgnoresInputAfterQuit(t *testing.T) {
	c := &counter{}
	d := New(t, c)

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressDown()
	assert.Equal(t, 1, c.keys)
}
