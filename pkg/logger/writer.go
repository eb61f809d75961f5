/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"bytes"
)

// LogWriter forwards complete lines to the file logger at info level.
// It is a no-op when the file logger isn't initialized.
type LogWriter struct {
	logger *SimpleUtLogger
	buf    []byte
}

func NewLogWriter(l *SimpleUtLogger) *LogWriter {
	return &LogWriter{logger: l}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	if w.logger.Logger == nil {
		return len(p), nil
	}

	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.logger.Logger.Info(string(w.buf[:idx]))
		w.buf = w.buf[idx+1:]
	}

	return len(p), nil
}

func (w *LogWriter) Close() error {
	if len(w.buf) > 0 && w.logger.Logger != nil {
		w.logger.Logger.Info(string(w.buf))
	}
	w.buf = nil
	return nil
}
