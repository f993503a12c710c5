// Package cmd 存放程序的所有子命令
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Env 存储全局选项 --env 的值
var Env string

// RegisterGlobalFlags 注册全局选项（flag）
func RegisterGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&Env, "env", "e", "", "load .env file, example: --env=testing will use .env.testing file")
}

// RegisterDefaultCmd 没有指定子命令时执行 subCmd
func RegisterDefaultCmd(rootCmd *cobra.Command, subCmd *cobra.Command) {
	args := os.Args[1:]
	cmd, _, err := rootCmd.Find(args)

	firstArg := ""
	if len(args) > 0 {
		firstArg = args[0]
	}
	if err == nil && cmd.Use == rootCmd.Use && firstArg != "-h" && firstArg != "--help" {
		rootCmd.SetArgs(append([]string{subCmd.Use}, args...))
	}
}
