package logger

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var currentLevel = LevelInfo

// SetLevel задает минимальный уровень логирования.
func SetLevel(level Level) {
	currentLevel = level
}

// Debug пишет отладочное сообщение; виден только при LevelDebug.
func Debug(ctx context.Context, msg string, fields ...any) {
	if currentLevel > LevelDebug {
		return
	}
	log.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func Info(ctx context.Context, msg string, fields ...any) {
	if currentLevel > LevelInfo {
		return
	}
	log.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error пишет сообщение об ошибке. err может быть nil,
// тогда выводится только сообщение.
func Error(ctx context.Context, err error, msg string, fields ...any) {
	if err != nil {
		log.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
		return
	}
	log.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// formatFields собирает пары ключ-значение в хвост строки лога.
// Непарный последний элемент игнорируется.
func formatFields(fields []any) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	return b.String()
}
