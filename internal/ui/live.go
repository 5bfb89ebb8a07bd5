package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Live runs tx and view side by side until one of them returns. A failing tx
// cancels the view and its error is returned right away; a view that quits
// cancels tx. view must return once its context is done.
func Live(ctx context.Context, tx, view func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	txErr := make(chan error, 1)
	go func() { txErr <- tx(ctx) }()
	viewErr := make(chan error, 1)
	go func() { viewErr <- view(ctx) }()

	select {
	case err := <-txErr:
		cancel()
		<-viewErr
		return err
	case err := <-viewErr:
		if ctx.Err() != nil {
			err = nil
		}
		cancel()
		if txe := <-txErr; txe != nil {
			return txe
		}
		return err
	}
}

// RunStatus shows the status view until the user quits or ctx is done.
func RunStatus(ctx context.Context, m StatusModel) error {
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}
