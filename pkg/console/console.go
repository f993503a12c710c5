// Package console 命令行辅助方法
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Success 打印一条成功消息，绿色输出
func Success(msg string) {
	colorOut(os.Stdout, msg, color.FgGreen)
}

// Error 打印一条报错消息，红色输出
func Error(msg string) {
	colorOut(os.Stderr, msg, color.FgRed)
}

// Warning 打印一条提示消息，黄色输出
func Warning(msg string) {
	colorOut(os.Stdout, msg, color.FgYellow)
}

// Exit 打印一条报错消息，并退出 os.Exit(1)
func Exit(msg string) {
	Error(msg)
	os.Exit(1)
}

// ExitIf 语法糖，自带 err != nil 判断
func ExitIf(err error) {
	if err != nil {
		Exit(err.Error())
	}
}

// Label 青色标签加高亮值，例如 "Spread: three"
func Label(w io.Writer, label, format string, args ...interface{}) {
	fmt.Fprintln(w, color.CyanString(label)+color.HiWhiteString(format, args...))
}

// colorOut 内部使用，设置高亮颜色
func colorOut(w io.Writer, message string, attr color.Attribute) {
	fmt.Fprintln(w, color.New(attr, color.Bold).Sprint(message))
}
