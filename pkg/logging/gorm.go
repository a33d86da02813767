package logging

import (
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/narasux/goarticle/pkg/common/runmode"
	"github.com/narasux/goarticle/pkg/envs"
)

// 超过该耗时的 SQL 会被记录为慢查询
const slowSQLThreshold = 200 * time.Millisecond

// NewGormLogger 将 gorm 的 SQL 日志输出到 sql logger，调试模式下记录所有 SQL
func NewGormLogger() gormlogger.Interface {
	level := gormlogger.Warn
	if envs.GinRunMode == runmode.Debug {
		level = gormlogger.Info
	}
	return gormlogger.New(GetSqlLogger(), gormlogger.Config{
		SlowThreshold:             slowSQLThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
