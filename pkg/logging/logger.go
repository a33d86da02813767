package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/goarticle/pkg/envs"
)

// 日志切割参数
const (
	// 单文件大小上限（MB）
	logFileMaxSize = 128
	// 保留的归档数量
	logFileMaxBackups = 10
	// 归档保留天数
	logFileMaxAge = 14
)

// 获取日志 Writer：未配置日志目录时仅输出到 stdout，否则双写（stdout & file）
func getWriter(logType string) (io.Writer, error) {
	if envs.LogFileBaseDir == "" {
		return os.Stdout, nil
	}
	fileWriter, err := getFileWriter(logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(os.Stdout, fileWriter), nil
}

// 不同的日志类型分目录存储，由 lumberjack 负责切割归档
func getFileWriter(logType string) (io.Writer, error) {
	dir := filepath.Join(envs.LogFileBaseDir, logType)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logType+".log"),
		MaxSize:    logFileMaxSize,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAge,
		LocalTime:  true,
	}, nil
}
