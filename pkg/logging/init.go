package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narasux/goarticle/pkg/envs"
)

const (
	// LogTypeSystem 系统日志（启动、迁移、命令行）
	LogTypeSystem = "system"
	// LogTypeAccess 访问日志
	LogTypeAccess = "access"
	// LogTypeWeb 业务日志（Handler / Service）
	LogTypeWeb = "web"
	// LogTypeSql sql 日志（gorm）
	LogTypeSql = "sql"
)

var (
	initOnce sync.Once
	loggers  = map[string]*logrus.Logger{}
)

// InitLogger 初始化各类日志，未初始化时所有 Getter 都回退到系统日志
func InitLogger() {
	initOnce.Do(func() {
		configureSystemLogger()
		for _, logType := range []string{LogTypeAccess, LogTypeWeb, LogTypeSql} {
			loggers[logType] = newJsonLogger(logType)
		}
	})
}

// GetSystemLogger ...
func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

// GetAccessLogger ...
func GetAccessLogger() *logrus.Logger {
	return getLogger(LogTypeAccess)
}

// GetWebLogger ...
func GetWebLogger() *logrus.Logger {
	return getLogger(LogTypeWeb)
}

// GetSqlLogger ...
func GetSqlLogger() *logrus.Logger {
	return getLogger(LogTypeSql)
}

func getLogger(logType string) *logrus.Logger {
	if logger, ok := loggers[logType]; ok {
		return logger
	}
	return GetSystemLogger()
}

// 系统日志即 logrus 的标准 logger，使用文本格式
func configureSystemLogger() {
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	logrus.SetLevel(parseLevel(envs.LogLevel))
}

func newJsonLogger(logType string) *logrus.Logger {
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}

	logger := logrus.New()
	logger.SetOutput(writer)
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.DateTime})
	logger.SetLevel(parseLevel(envs.LogLevel))
	return logger
}

// 解析日志级别，非法值按 info 处理
func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
