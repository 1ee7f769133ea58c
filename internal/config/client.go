// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultClientServerAddress = "http://localhost:8080"
	defaultClientTimeout       = 10 * time.Second
)

// Client holds the settings of the command-line API client.
type Client struct {
	// ServerAddress is the base URL of the blog backend.
	// Env: BLOG_SERVER_ADDRESS
	ServerAddress string `env:"BLOG_SERVER_ADDRESS"`

	// Token is a bearer token for authenticated commands.
	// Env: BLOG_TOKEN
	Token string `env:"BLOG_TOKEN"`

	// RequestTimeout bounds a single API call.
	// Env: BLOG_CLIENT_TIMEOUT
	RequestTimeout time.Duration `env:"BLOG_CLIENT_TIMEOUT"`

	// Env: BLOG_CLIENT_LOG_LEVEL
	LogLevel string `env:"BLOG_CLIENT_LOG_LEVEL"`
}

// GetClientConfig merges flags, environment and defaults (in that order of
// precedence) and returns the config together with the positional
// arguments left after the flags.
//
// Flags:
//
//	-s server base URL
//	-token bearer token
//	-timeout request timeout (e.g., "5s")
//	-log-level log level
func GetClientConfig(args []string) (*Client, []string, error) {
	fs := flag.NewFlagSet("blog-client", flag.ContinueOnError)

	flagsCfg := &Client{}
	fs.StringVar(&flagsCfg.ServerAddress, "s", "", "Server base URL")
	fs.StringVar(&flagsCfg.Token, "token", "", "Bearer token")
	fs.DurationVar(&flagsCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&flagsCfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	envCfg := &Client{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	cfg := &Client{}
	for _, source := range []*Client{flagsCfg, envCfg, {
		ServerAddress:  defaultClientServerAddress,
		RequestTimeout: defaultClientTimeout,
		LogLevel:       defaultLogLevel,
	}} {
		if err := mergo.Merge(cfg, source); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, fs.Args(), nil
}
