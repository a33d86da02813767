package uuid

import (
	"encoding/hex"

	"github.com/gofrs/uuid"
)

// GenUUID4 生成 32 位十六进制的 UUID（不含中划线），用于 Request ID 与会话 ID
func GenUUID4() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}

// IsUUID4Hex 判断是否为 GenUUID4 生成格式的字符串
func IsUUID4Hex(s string) bool {
	if len(s) != 32 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
