package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 迁移集合，由 migration 包在 init 阶段注册
type migrationSet struct {
	sync.Mutex
	mapping map[string]*gormigrate.Migration
}

func (s *migrationSet) register(m *gormigrate.Migration) error {
	s.Lock()
	defer s.Unlock()

	if m.ID == "" {
		return errors.New("migration id is required")
	}
	if _, ok := s.mapping[m.ID]; ok {
		return errors.Errorf("migration %s already registered", m.ID)
	}
	s.mapping[m.ID] = m
	return nil
}

// 按 ID 升序返回所有迁移（ID 以时间为前缀，升序即为创建顺序）
func (s *migrationSet) list() []*gormigrate.Migration {
	s.Lock()
	defer s.Unlock()

	migrations := make([]*gormigrate.Migration, 0, len(s.mapping))
	for _, m := range s.mapping {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})
	return migrations
}

var (
	migSet         *migrationSet
	migSetInitOnce sync.Once
)

// 初始化数据库迁移集
func getMigrationSet() *migrationSet {
	migSetInitOnce.Do(func() {
		migSet = &migrationSet{
			mapping: map[string]*gormigrate.Migration{},
		}
	})
	return migSet
}

// RegisterMigration 注册迁移文件
func RegisterMigration(m *gormigrate.Migration) {
	if err := getMigrationSet().register(m); err != nil {
		panic(err)
	}
}

// RunMigrate 执行迁移，migrationID 为空表示迁移到最新版本
func RunMigrate(ctx context.Context, migrationID string) error {
	return Migrate(Client(ctx), migrationID)
}

// Migrate 在指定的 DB 上执行迁移
func Migrate(tx *gorm.DB, migrationID string) error {
	migrations := getMigrationSet().list()
	if len(migrations) == 0 {
		return errors.New("no migration registered")
	}

	m := gormigrate.New(tx, gormigrate.DefaultOptions, migrations)
	if migrationID == "" {
		return m.Migrate()
	}
	return m.MigrateTo(migrationID)
}

// Version 获取当前数据库版本（最后一次执行的迁移 ID）
func Version(ctx context.Context) (string, error) {
	var version string
	err := Client(ctx).
		Table(gormigrate.DefaultOptions.TableName).
		Select(gormigrate.DefaultOptions.IDColumnName).
		Order(gormigrate.DefaultOptions.IDColumnName + " desc").
		Limit(1).
		Scan(&version).Error
	if err != nil {
		return "", err
	}
	return version, nil
}

// GenMigrationID 生成迁移 ID（格式：20060102_150405）
func GenMigrationID() string {
	return time.Now().Format("20060102_150405")
}

// RunRollback 回滚迁移，migrationID 为空表示仅回滚最后一次迁移
func RunRollback(ctx context.Context, migrationID string) error {
	migrations := getMigrationSet().list()
	if len(migrations) == 0 {
		return errors.New("no migration registered")
	}

	m := gormigrate.New(Client(ctx), gormigrate.DefaultOptions, migrations)
	if migrationID == "" {
		return m.RollbackLast()
	}
	return m.RollbackTo(migrationID)
}
