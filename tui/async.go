package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/Bebric123/MedAnalyzer/model"
)

// reqContext bounds a single user-triggered request. The HTTP client has its
// own timeout; this guards everything around it.
func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func textBlink() tea.Cmd {
	return textinput.Blink
}

// prefetchMsg carries the warm-up data loaded right after sign-in.
type prefetchMsg struct {
	diseases model.DiseaseHistory
	entries  model.JournalList
	err      error
}

// prefetchCmd loads the disease history and journal in parallel so the
// history and journal views open populated.
func (m Model) prefetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()

		var msg prefetchMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			diseases, err := client.Diseases(gctx)
			if err != nil {
				return err
			}
			msg.diseases = diseases
			return nil
		})
		g.Go(func() error {
			entries, err := client.JournalEntries(gctx)
			if err != nil {
				return err
			}
			msg.entries = entries
			return nil
		})
		msg.err = g.Wait()
		return msg
	}
}
