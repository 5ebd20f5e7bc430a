// SPDX-License-Identifier: GPL-3.0-or-later

package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/robgonnella/framespector/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	defer func() {
		logger.SetGlobalLevel(zerolog.InfoLevel)
		logger.Reset()
	}()

	t.Run("sets global log level", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.InfoLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.ErrorLevel)

		log := logger.New()

		testString := "this is a test string"

		log.Debug().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Info().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Warn().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Error().Msg(testString)
		assert.Contains(st, buf.String(), testString)
	})

	t.Run("sets caller option", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.InfoLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.DebugLevel)

		log := logger.New()

		log.Info().Msg("with caller")

		output := buf.String()
		assert.Contains(st, output, "with caller")
		assert.Contains(st, output, "logger_test.go")
	})

	t.Run("tags component loggers", func(st *testing.T) {
		defer logger.Reset()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)

		log := logger.Component("core")

		log.Error().Err(errors.New("boom")).Msg("stage failed")

		output := buf.String()
		assert.Contains(st, output, "component=core")
		assert.Contains(st, output, "error=boom")
		assert.Contains(st, output, "stage failed")
	})
}
