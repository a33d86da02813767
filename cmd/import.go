package cmd

import (
	"context"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/loader"
	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/service"
)

// NewImportCmd 从目录批量导入文章
func NewImportCmd() *cobra.Command {
	var username, dir string

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import articles (articles.json + articles/*.md) for user.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logging.InitLogger()
			database.InitDBClient(ctx)

			db := database.Client(ctx)
			user, err := service.GetUserByName(ctx, db, username)
			if err != nil {
				log.Fatalf("failed to get user %s: %s", username, err)
			}
			summary, err := loader.New(db, dir).Exec(ctx, user)
			if err != nil {
				log.Fatalf("failed to import articles from %s: %s", dir, err)
			}
			color.Green("%d articles imported, tags: %v", len(summary.Articles), summary.Tags)
		},
	}

	importCmd.Flags().StringVar(&username, "user", "", "owner of imported articles")
	importCmd.Flags().StringVar(&dir, "dir", "", "directory contains articles.json")
	_ = importCmd.MarkFlagRequired("user")
	_ = importCmd.MarkFlagRequired("dir")

	return importCmd
}

func init() {
	rootCmd.AddCommand(NewImportCmd())
}
