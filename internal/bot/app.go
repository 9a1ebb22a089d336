// Package bot assembles the schedule bot: group registry, Sheets data
// source, conversation machine and Telegram wiring.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	coreconfig "github.com/Nik4Low/KGTUbot/core/config"
	"github.com/Nik4Low/KGTUbot/core/logger"
	"github.com/Nik4Low/KGTUbot/core/telegram"
	"github.com/Nik4Low/KGTUbot/core/telegram/commands"
	"github.com/Nik4Low/KGTUbot/core/telegram/router"
	"github.com/Nik4Low/KGTUbot/internal/conversation"
	"github.com/Nik4Low/KGTUbot/internal/groups"
	"github.com/Nik4Low/KGTUbot/internal/schedule"
	"github.com/Nik4Low/KGTUbot/internal/sheets"
)

// Run builds all components and runs the bot until ctx is done.
func Run(ctx context.Context, cfg *coreconfig.Config) error {
	registry, err := groups.Load(cfg.Groups.File)
	if err != nil {
		return err
	}
	names, truncated := logger.SummarizeStrings(registry.Names(), 8)
	logger.Groups.Info("groups loaded",
		slog.String("event", "load"),
		slog.String("file", cfg.Groups.File),
		slog.Int("count", registry.Len()),
		slog.String("sample", names),
		slog.Bool("truncated", truncated),
	)

	client, err := sheets.NewClient(ctx, cfg.Sheets)
	if err != nil {
		return err
	}
	source := sheets.NewSource(client, cfg.Sheets.Range)
	machine := conversation.NewMachine(registry, source)
	h := newHandlers(machine)

	reg := telegram.NewRegistry()
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "начальное приветствие",
	})
	reg.RegisterCommand("/change_group", commands.Command{
		Handler:     h.ChangeGroup,
		Description: "Сменить номер группы",
	})

	views := map[string]schedule.View{
		cbToday:    schedule.ViewToday,
		cbTomorrow: schedule.ViewTomorrow,
		cbWeek:     schedule.ViewWeek,
	}
	for key, view := range views {
		if err := reg.RegisterCallback(key, h.Menu(view)); err != nil {
			return fmt.Errorf("bot: register callback %s: %w", key, err)
		}
	}
	reg.SetCallbackNotFound(h.UnknownCallback)

	routes := router.CommandRoutes(reg)
	routes = append(routes, router.TextRoutes(h, reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	return telegram.RunTelegram(ctx, telegram.RunOptions{
		Config:      cfg,
		Registry:    reg,
		Middlewares: telegram.DefaultMiddlewares(cfg, nil),
		Routes:      routes,
	})
}
