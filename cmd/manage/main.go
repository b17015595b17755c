package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/seed"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "manage",
		Short:        "Tarefas administrativas do lead dashboard",
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCmd(), newSeedCmd())

	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações pendentes do banco de dados",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnection(cmd.Context(), func(_ context.Context, _ *config.Config, conn *postgres.Connection) error {
				return postgres.RunMigrations(conn)
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var randSeed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Popula categorias, fontes, semanas e métricas de exemplo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnection(cmd.Context(), func(ctx context.Context, cfg *config.Config, conn *postgres.Connection) error {
				seedCfg := cfg.Seed
				if cmd.Flags().Changed("rand-seed") {
					seedCfg.RandSeed = randSeed
				}

				_, err := seed.New(conn, seedCfg).Run(ctx)
				return err
			})
		},
	}

	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "semente dos valores aleatórios (0 usa o relógio)")

	return cmd
}

func withConnection(ctx context.Context, fn func(context.Context, *config.Config, *postgres.Connection) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return err
	}
	defer conn.Close()

	return fn(ctx, cfg, conn)
}
