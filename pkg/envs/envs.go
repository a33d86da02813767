package envs

import (
	"path/filepath"
	"time"

	"github.com/narasux/goarticle/pkg/common/runmode"
	"github.com/narasux/goarticle/pkg/utils/envx"
	"github.com/narasux/goarticle/pkg/utils/pathx"
)

// BaseDir 项目根目录（make-migration 生成文件时使用）
var BaseDir = filepath.Join(pathx.GetCurPKGPath(), "../..")

// 以下变量值可通过环境变量指定
var (
	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// Domain 服务域名
	Domain = envx.Get("DOMAIN", "localhost:8080")

	// DomainScheme 服务域名协议
	DomainScheme = envx.Get("DOMAIN_SCHEME", "http")

	// RealClientIPHeaderKey 获取真实客户端 IP 的请求头（经过反向代理时使用）
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// AllowedOrigins 跨域允许的来源，多个以逗号分隔，为空表示允许所有
	AllowedOrigins = envx.Get("ALLOWED_ORIGINS", "")

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(BaseDir, "logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")
)

// 数据库相关配置
var (
	// DatabaseDriver 数据库类型（mysql/sqlite）
	DatabaseDriver = envx.Get("DATABASE_DRIVER", "mysql")

	// MysqlHost ...
	MysqlHost = envx.Get("MYSQL_HOST", "127.0.0.1")
	// MysqlPort ...
	MysqlPort = envx.Get("MYSQL_PORT", "3306")
	// MysqlUser ...
	MysqlUser = envx.Get("MYSQL_USER", "root")
	// MysqlPassword ...
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")
	// MysqlDatabase ...
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "goarticle")
	// MysqlCharSet ...
	MysqlCharSet = envx.Get("MYSQL_CHARSET", "utf8mb4")

	// SqlitePath sqlite 数据文件路径（本地开发用）
	SqlitePath = envx.Get("SQLITE_PATH", filepath.Join(BaseDir, "goarticle.db"))
)

// Redis 相关配置（会话数据存储于 Redis）
var (
	// RedisAddr ...
	RedisAddr = envx.Get("REDIS_ADDR", "127.0.0.1:6379")
	// RedisPassword ...
	RedisPassword = envx.Get("REDIS_PASSWORD", "")
	// RedisDB ...
	RedisDB = envx.GetInt("REDIS_DB", 0)
)

// 会话 & 认证相关配置
var (
	// SessionCookieName 会话 Cookie 名称
	SessionCookieName = envx.Get("SESSION_COOKIE_NAME", "goarticle_session")
	// SessionTTL 会话有效期
	SessionTTL = envx.GetDuration("SESSION_TTL", 14*24*time.Hour)

	// JWTSecret 签发 / 校验 Token 的密钥
	JWTSecret = envx.Get("JWT_SECRET", "goarticle-insecure-secret")
	// JWTIssuer Token 签发者
	JWTIssuer = envx.Get("JWT_ISSUER", "goarticle")
	// JWTDefaultTTL Token 默认有效期
	JWTDefaultTTL = envx.GetDuration("JWT_DEFAULT_TTL", 7*24*time.Hour)
)
