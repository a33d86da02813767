package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/infras/redis"
	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/router"
	"github.com/narasux/goarticle/pkg/session"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "Start goarticle http server.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		logging.InitLogger()
		database.InitDBClient(ctx)
		redis.InitRedisClient(ctx)
		session.SetDefaultStore(session.NewRedisStore(redis.Client(), envs.SessionTTL))

		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		color.Cyan("Database driver: %s, session redis: %s", envs.DatabaseDriver, envs.RedisAddr)
		router.InitRouter()
	},
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
