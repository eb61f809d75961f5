/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"

	specs "github.com/macaroni-os/simple-ut/pkg/specs"

	"github.com/kyokomi/emoji"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type SimpleUtLogger struct {
	Config *specs.SimpleUtConfig
	Logger *zap.Logger
	Aurora aurora.Aurora
	Out    io.Writer
}

var (
	defaultLogger *SimpleUtLogger = nil
	emojiRegex                    = regexp.MustCompile(`:[a-z][a-z0-9_]*:`)
)

func NewSimpleUtLogger(config *specs.SimpleUtConfig) *SimpleUtLogger {
	return &SimpleUtLogger{
		Logger: nil,
		Aurora: aurora.NewAurora(config.GetLogging().Color && isTerminal(os.Stdout)),
		Config: config,
		Out:    os.Stdout,
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (l *SimpleUtLogger) GetAurora() aurora.Aurora {
	return l.Aurora
}

func (l *SimpleUtLogger) SetAsDefault() {
	defaultLogger = l
}

// NewDefaultLogger returns a logger configured with the defaults of v
// (a new viper instance when nil).
func NewDefaultLogger(v *viper.Viper) (*SimpleUtLogger, error) {
	config := specs.NewSimpleUtConfig(v)
	err := config.Viper.Unmarshal(&config)
	return NewSimpleUtLogger(config), err
}

// GetDefaultLogger returns the logger installed with SetAsDefault or,
// when none is installed yet, a logger with the default configuration.
func GetDefaultLogger() *SimpleUtLogger {
	if defaultLogger == nil {
		l, err := NewDefaultLogger(nil)
		if err != nil {
			fmt.Fprint(os.Stderr, "Error on load default logging config: "+err.Error()+"\n")
		}
		defaultLogger = l
	}
	return defaultLogger
}

func (l *SimpleUtLogger) InitLogger2File() error {
	var err error

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{l.Config.GetLogging().Path}
	cfg.Level = level2AtomicLevel(l.Config.GetLogging().Level)
	cfg.ErrorOutputPaths = []string{}
	if l.Config.GetLogging().JsonFormat {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l.Logger, err = cfg.Build()
	if err != nil {
		fmt.Fprint(os.Stderr, "Error on initialize file logger: "+err.Error()+"\n")
		return err
	}

	return nil
}

func (l *SimpleUtLogger) Sync() {
	if l.Logger != nil {
		_ = l.Logger.Sync()
	}
}

func level2Number(level string) int {
	switch level {
	case "error":
		return 0
	case "warning":
		return 1
	case "info":
		return 2
	default:
		return 3
	}
}

func (l *SimpleUtLogger) log2File(level, msg string) {
	switch level {
	case "error":
		l.Logger.Error(msg)
	case "warning":
		l.Logger.Warn(msg)
	case "info":
		l.Logger.Info(msg)
	default:
		l.Logger.Debug(msg)
	}
}

func level2AtomicLevel(level string) zap.AtomicLevel {
	switch level {
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	case "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
}

func (l *SimpleUtLogger) Msg(level string, withoutColor, ln bool, msg ...interface{}) {
	var message string
	var confLevel, msgLevel int

	if l.Config.GetGeneral().HasDebug() {
		confLevel = 3
	} else {
		confLevel = level2Number(l.Config.GetLogging().Level)
	}
	msgLevel = level2Number(level)
	if msgLevel > confLevel {
		return
	}

	for idx, m := range msg {
		if idx > 0 {
			message += " "
		}
		message += fmt.Sprintf("%v", m)
	}

	var levelMsg string

	if withoutColor || !l.Config.GetLogging().Color {
		levelMsg = message
	} else {
		switch level {
		case "warning":
			levelMsg = l.Aurora.Bold(l.Aurora.Yellow(":construction:" + message)).String()
		case "debug":
			levelMsg = l.Aurora.White(message).String()
		case "info":
			levelMsg = l.Aurora.Bold(message).String()
		case "error":
			levelMsg = l.Aurora.Bold(l.Aurora.Red(":bomb:" + message + ":fire:")).BgBlack().String()
		}
	}

	if l.Config.GetLogging().EnableEmoji {
		levelMsg = emoji.Sprint(levelMsg)
	} else {
		levelMsg = emojiRegex.ReplaceAllString(levelMsg, "")
	}

	if l.Logger != nil {
		l.log2File(level, message)
	}

	if ln {
		fmt.Fprintln(l.Out, levelMsg)
	} else {
		fmt.Fprint(l.Out, levelMsg)
	}
}

func (l *SimpleUtLogger) Warning(mess ...interface{}) {
	l.Msg("warning", false, true, mess...)
}

func (l *SimpleUtLogger) Debug(mess ...interface{}) {
	l.Msg("debug", false, true, mess...)
}

func (l *SimpleUtLogger) DebugC(mess ...interface{}) {
	l.Msg("debug", true, true, mess...)
}

func (l *SimpleUtLogger) Info(mess ...interface{}) {
	l.Msg("info", false, true, mess...)
}

func (l *SimpleUtLogger) InfoC(mess ...interface{}) {
	l.Msg("info", true, true, mess...)
}

func (l *SimpleUtLogger) Error(mess ...interface{}) {
	l.Msg("error", false, true, mess...)
}

func (l *SimpleUtLogger) Fatal(mess ...interface{}) {
	l.Error(mess...)
	l.Sync()
	os.Exit(1)
}

func (l *SimpleUtLogger) DebugEnabled() bool {
	return l.Config.GetGeneral().HasDebug() ||
		level2Number(l.Config.GetLogging().Level) >= 3
}
