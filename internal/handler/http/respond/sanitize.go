package respond

import (
	"regexp"
)

var (
	// 接続文字列内の認証情報パターン（mongodb:// 等のDSN）
	dsnCredentialsPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// 生のパスワード指定パターン（authSource等と並ぶクエリパラメータ）
	passwordParamPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)=([^&\s]+)`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// DSN内の認証情報のマスク
	msg = dsnCredentialsPattern.ReplaceAllString(msg, "://$1:****@")

	// パラメータ形式のパスワードのマスク
	msg = passwordParamPattern.ReplaceAllString(msg, "$1=****")

	return msg
}
