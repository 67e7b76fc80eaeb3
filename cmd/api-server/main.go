package main

import (
	"fmt"
	"os"

	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/pkg/database"
	"github.com/Nascian/socialnetwork-backend/pkg/log"
	"github.com/Nascian/socialnetwork-backend/pkg/server"
	"github.com/Nascian/socialnetwork-backend/pkg/snowflake"
	"github.com/Nascian/socialnetwork-backend/service"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder holds what the migrate and seed commands need.
type Seeder struct {
	DB          *gorm.DB
	SeedService *service.SeedService
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid snowflake node id", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "social network backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "create or update tables before serving"},
				},
				Action: func(ctx *cli.Context) error {
					app, err := InitServer(cfg)
					if err != nil {
						return err
					}
					if ctx.Bool("migrate") {
						if err := database.Migrate(app.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					seeder, err := InitSeeder(cfg)
					if err != nil {
						return err
					}
					return database.Migrate(seeder.DB)
				},
			},
			{
				Name:  "seed",
				Usage: "migrate and insert demo users, posts and likes",
				Action: func(ctx *cli.Context) error {
					seeder, err := InitSeeder(cfg)
					if err != nil {
						return err
					}
					if err := database.Migrate(seeder.DB); err != nil {
						return err
					}
					return seeder.SeedService.Seed(ctx.Context)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server failed", zap.Error(err))
	}
}
