package bootstrap

import (
	"context"
	"log/slog"

	"commerce-ledger/internal/domain/user"
	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin creates the first admin so a fresh database can be operated at all.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	if !cfg.Seed.Enabled() {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			id, err := auth.EnsureUser(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, user.RoleAdmin)
			if err != nil {
				return err
			}
			slog.Info("admin account ready", "user_id", id.String(), "email", cfg.Seed.AdminEmail)
			return nil
		},
	})
}
