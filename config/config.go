// Package config 站点配置信息
package config

// Initialize 触发本包所有 init 方法，注册配置组
func Initialize() {
	// 空方法，导入本包即可
}
