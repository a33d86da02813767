package cmd

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/logging"
)

var migrationTmpl = `
package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/infras/database"
)

// {{ .desc }}
func init() {
	// Do Not Edit Migration ID!
	migrationID := "{{ .id }}"

	database.RegisterMigration(&gormigrate.Migration{
		ID: migrationID,
		Migrate: func(tx *gorm.DB) error {
			logApplying(migrationID)

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			logRollingBack(migrationID)

			return nil
		},
	})
}
`

// 渲染迁移文件内容
func renderMigration(w io.Writer, migrationID, desc string) error {
	tmpl, err := template.New("migration").Parse(strings.TrimLeft(migrationTmpl, "\n"))
	if err != nil {
		return err
	}
	return tmpl.Execute(w, map[string]string{"id": migrationID, "desc": desc})
}

// NewMakeMigrationCmd ...
func NewMakeMigrationCmd() *cobra.Command {
	var (
		desc   string
		dryRun bool
	)

	makeMigrationCmd := &cobra.Command{
		Use:   "make-migration",
		Short: "Generate an empty migration file.",
		Run: func(cmd *cobra.Command, args []string) {
			logging.InitLogger()
			logger := logging.GetSystemLogger()

			migrationID := database.GenMigrationID()
			if dryRun {
				if err := renderMigration(cmd.OutOrStdout(), migrationID, desc); err != nil {
					logger.Fatalf("failed to render migration: %s", err)
				}
				return
			}

			fileName := fmt.Sprintf("%s.go", migrationID)
			filePath := path.Join(envs.BaseDir, "pkg/migration", fileName)
			file, err := os.Create(filePath)
			if err != nil {
				logger.Fatalf("failed to create migration file with path: %s, err: %s", filePath, err)
			}
			defer file.Close()

			if err = renderMigration(file, migrationID, desc); err != nil {
				logger.Fatalf("failed to render migration file %s: %s", filePath, err)
			}
			logger.Infof(
				"migration file %s generated, edit it to implement the migration "+
					"logic and then run `migrate` to apply",
				fileName,
			)
		},
	}

	makeMigrationCmd.Flags().StringVar(&desc, "desc", "migration description", "description of the migration")
	makeMigrationCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the migration to stdout instead of writing a file")

	return makeMigrationCmd
}

func init() {
	rootCmd.AddCommand(NewMakeMigrationCmd())
}
