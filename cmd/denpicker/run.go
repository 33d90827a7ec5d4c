package main

import (
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"denpicker/internal/ui"
)

func runPicker(cmd *cobra.Command, opts *rootOptions) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(ui.Deps{
		Config:  a.cfg,
		Store:   a.store,
		Source:  a.source,
		Bus:     a.bus,
		Logger:  a.logger,
		Context: ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		a.logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	a.logger.Info("exiting", zap.Strings("den", a.store.Items()))
	return nil
}
