package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/logging"
)

var (
	db         *gorm.DB
	dbInitOnce sync.Once
)

const (
	// DriverMysql ...
	DriverMysql = "mysql"
	// DriverSqlite ...
	DriverSqlite = "sqlite"
)

const (
	// string 类型字段的默认长度
	defaultStringSize = 256
	// 默认批量创建数量
	defaultBatchSize = 100
	// 默认最大空闲连接
	defaultMaxIdleConns = 20
	// 默认最大连接数
	defaultMaxOpenConns = 100
)

// Client 获取数据库客户端
func Client(ctx context.Context) *gorm.DB {
	if db == nil {
		log.Fatal("database client not init")
	}
	// 设置上下文目的：让 sql 日志带上 Request ID
	return db.WithContext(ctx)
}

// SetClient 直接指定数据库客户端（测试 & 命令行工具使用）
func SetClient(client *gorm.DB) {
	db = client
}

// InitDBClient 初始化数据库客户端
func InitDBClient(ctx context.Context) {
	if db != nil {
		return
	}
	dbInitOnce.Do(func() {
		dbInfo := describe()

		var err error
		if db, err = newClient(ctx); err != nil {
			log.Fatalf("failed to connect database %s: %s", dbInfo, err)
		} else {
			logging.GetSystemLogger().Infof("database: %s connected", dbInfo)
		}
	})
}

func describe() string {
	if envs.DatabaseDriver == DriverSqlite {
		return fmt.Sprintf("sqlite %s", envs.SqlitePath)
	}
	return fmt.Sprintf("mysql %s:%s/%s", envs.MysqlHost, envs.MysqlPort, envs.MysqlDatabase)
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logging.NewGormLogger(),
		// 禁用默认事务（需要手动管理）
		SkipDefaultTransaction: true,
		// Mysql 本身即不支持嵌套事务
		DisableNestedTransaction: true,
		// 批量操作数量
		CreateBatchSize: defaultBatchSize,
		// 数据库迁移时，忽略外键约束
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

func newClient(ctx context.Context) (*gorm.DB, error) {
	switch envs.DatabaseDriver {
	case DriverMysql:
		return newMysqlClient(ctx)
	case DriverSqlite:
		return NewSqliteClient(envs.SqlitePath)
	default:
		return nil, errors.Errorf("unsupported database driver: %s", envs.DatabaseDriver)
	}
}

// 初始化 Mysql Client
func newMysqlClient(ctx context.Context) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=true",
		envs.MysqlUser,
		envs.MysqlPassword,
		envs.MysqlHost,
		envs.MysqlPort,
		envs.MysqlDatabase,
		envs.MysqlCharSet,
	)

	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(defaultMaxIdleConns)
	sqlDB.SetMaxOpenConns(defaultMaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	cCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// 检查 DB 是否可用
	if err = sqlDB.PingContext(cCtx); err != nil {
		return nil, err
	}

	mysqlCfg := mysql.Config{
		DSN:                       dsn,
		Conn:                      sqlDB,
		DefaultStringSize:         defaultStringSize,
		SkipInitializeWithVersion: false,
	}
	gormCfg := newGormConfig()
	// 缓存预编译语句
	gormCfg.PrepareStmt = true

	return gorm.Open(mysql.New(mysqlCfg), gormCfg)
}

// NewSqliteClient 初始化 Sqlite Client，path 为 ":memory:" 时使用内存数据库
func NewSqliteClient(path string) (*gorm.DB, error) {
	client, err := gorm.Open(sqlite.Open(path), newGormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := client.DB()
	if err != nil {
		return nil, err
	}
	// sqlite 不支持并发写，内存库多连接时各连接数据互不可见
	sqlDB.SetMaxOpenConns(1)
	return client, nil
}
