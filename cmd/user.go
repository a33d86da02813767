package cmd

import (
	"context"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/service"
	"github.com/narasux/goarticle/pkg/utils/jwtx"
)

// NewUserCmd 用户管理
func NewUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users.",
	}

	var name string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logging.InitLogger()
			database.InitDBClient(ctx)

			user, err := service.CreateUser(ctx, database.Client(ctx), name)
			if err != nil {
				log.Fatalf("failed to create user %s: %s", name, err)
			}
			color.Green("user %s created, id: %d", user.Name, user.ID)
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "user name")
	_ = createCmd.MarkFlagRequired("name")

	userCmd.AddCommand(createCmd)
	return userCmd
}

// NewTokenCmd 签发访问 Token
func NewTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens.",
	}

	var username string
	ttl := envs.JWTDefaultTTL
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue an access token for user.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logging.InitLogger()
			database.InitDBClient(ctx)

			// 确认用户存在，避免签发无效 Token
			if _, err := service.GetUserByName(ctx, database.Client(ctx), username); err != nil {
				log.Fatalf("failed to get user %s: %s", username, err)
			}
			token, err := jwtx.NewSigner(envs.JWTSecret, envs.JWTIssuer).Issue(username, ttl)
			if err != nil {
				log.Fatalf("failed to issue token: %s", err)
			}
			color.Green("token for %s (expires in %s):", username, ttl)
			cmd.Println(token)
		},
	}
	issueCmd.Flags().StringVar(&username, "user", "", "user name")
	issueCmd.Flags().DurationVar(&ttl, "ttl", ttl, "token ttl")
	_ = issueCmd.MarkFlagRequired("user")

	tokenCmd.AddCommand(issueCmd)
	return tokenCmd
}

func init() {
	rootCmd.AddCommand(NewUserCmd())
	rootCmd.AddCommand(NewTokenCmd())
}
