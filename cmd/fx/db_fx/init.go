package db_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/infra"
	"wayfarer/internal/repositories"
)

var Module = fx.Provide(provideUsageRepository)

// provideUsageRepository wires the completion-usage ledger. Without a
// POSTGRES_URL the ledger is disabled and a no-op recorder is used, so the
// server still runs in a database-less setup.
func provideUsageRepository(lc fx.Lifecycle) repositories.UsageRepositoryInterface {
	if os.Getenv("POSTGRES_URL") == "" {
		log.Println("POSTGRES_URL not set, completion usage ledger disabled")
		return repositories.NewNoopUsageRepository()
	}

	db := infra.InitPostgresql()
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db)
	}))

	return repositories.NewUsageRepository(db)
}
