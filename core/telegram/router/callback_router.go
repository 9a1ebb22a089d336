package router

import (
	"log/slog"
	"time"

	"github.com/Nik4Low/KGTUbot/core/logger"
	tg "github.com/Nik4Low/KGTUbot/core/telegram"
	"github.com/Nik4Low/KGTUbot/core/telegram/callbacks"
	tghelpers "github.com/Nik4Low/KGTUbot/core/telegram/helpers"
	"github.com/Nik4Low/KGTUbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises fallback behaviour for callbacks.
type CallbackOptions struct {
	NotFound tele.HandlerFunc
}

// CallbackRoute returns a handler that routes callbacks through the registry.
// The callback is acknowledged after the handler completes so the client
// spinner reflects actual processing; acknowledge failures are logged and
// swallowed since the user-visible reply has already been sent.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		if c.Callback() == nil {
			return nil
		}

		key := callbacks.CallbackKey(c)
		name := "callback." + normalizeHandlerName(key)
		extras := []slog.Attr{slog.String("cb_key", key)}

		cbHandler, ok := reg.GetCallback(key)
		if !ok || cbHandler == nil {
			// The fallback acknowledges on its own, usually with an
			// explanatory toast.
			fallback := reg.CallbackNotFound()
			if fallback == nil {
				fallback = opts.NotFound
			}
			extras = append(extras, slog.String("reason", "not_found"))
			return handleWithSummary(c, name, start, "", "", func() error {
				if fallback != nil {
					return fallback(c)
				}
				return nil
			}, extras...)
		}

		defer func() {
			if err := c.Respond(); err != nil {
				ctx := tghelpers.BuildContext(c)
				logger.Warn(ctx, "tg", "callback.ack.fail",
					slog.String("cb_key", key),
					slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
				)
			}
		}()

		return handleWithSummary(c, name, start, "", "", func() error {
			return cbHandler(c)
		}, extras...)
	}
	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}
