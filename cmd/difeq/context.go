package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/cwbudde/algo-difeq/audiofile"
	"github.com/cwbudde/algo-difeq/internal/config"
	"github.com/cwbudde/algo-difeq/internal/logging"
	"github.com/cwbudde/algo-difeq/session"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Runtime.LogLevel = *c.logLevelFlag
			if _, err := cfg.SlogLevel(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newLogger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{Level: cfg.Runtime.LogLevel, Output: w})
}

// newSession builds a session from the configuration with the curve flags
// applied on top.
func (c *commandContext) newSession(stderr io.Writer, flags *curveFlags) (*session.Session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.newLogger(stderr)
	if err != nil {
		return nil, err
	}

	win, err := cfg.WindowType()
	if err != nil {
		return nil, err
	}
	params, mode, err := flags.resolve(cfg)
	if err != nil {
		return nil, err
	}

	return session.New(audiofile.Loader{},
		session.WithAnalysis(cfg.Analysis.FFTSize, cfg.Analysis.HopSize, win),
		session.WithParams(params),
		session.WithChannelMode(mode),
		session.WithWorkers(cfg.Runtime.Workers),
		session.WithLogger(logger),
	)
}
