package errcode

const (
	// NoErr 无错误
	NoErr = 0

	// InvalidParams 参数不合法（含字段校验失败）
	InvalidParams = 40001
	// LikeFailed 点赞记录保存失败
	LikeFailed = 40002

	// Unauthorized 未登录
	Unauthorized = 40100
	// TokenInvalid Token 不合法
	TokenInvalid = 40101
	// TokenExpired Token 过期
	TokenExpired = 40102

	// Forbidden 无权限
	Forbidden = 40301

	// NotFound 资源不存在
	NotFound = 40401

	// Unknown 未知错误
	Unknown = 50001
)
