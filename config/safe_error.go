package config

// SafeErrorMessage 返回可暴露给客户端的错误信息
// release 模式下返回 fallback；其余模式（含未初始化）返回原始错误信息
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
