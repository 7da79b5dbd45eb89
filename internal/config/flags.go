// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a                  HTTP server address in format [host]:[port]
//	-grpc-address       gRPC health server address in format [host]:[port]
//	-d                  database DSN
//	-c/-config          JSON file path with configs
//	-token-sign-key     token signing key
//	-token-issuer       token issuer name
//	-token-duration     token duration (e.g. "100h")
//	-version            reported application version
//	-log-level          log level
//	-request-timeout    inbound request timeout (e.g. "30s")
//	-redis-address      Redis address for the GitHub cache
//	-cache-ttl          GitHub cache TTL
//	-github-url         GitHub API base URL
//	-github-token       GitHub API token
//	-adapter-timeout    outbound request timeout
//	-amqp-url           RabbitMQ URL for domain events
//	-events-exchange    fanout exchange name
//	-events-queue-size  in-process event queue capacity
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress
		cfg                              StructuredConfig
	)

	fs := flag.NewFlagSet("dev-connector", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "HTTP server address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "gRPC server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 100h)")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.Cache.RedisAddress, "redis-address", "", "Redis address host:port")
	fs.DurationVar(&cfg.Storage.Cache.TTL, "cache-ttl", 0, "GitHub cache TTL")
	fs.StringVar(&cfg.Adapter.Github.BaseURL, "github-url", "", "GitHub API base URL")
	fs.StringVar(&cfg.Adapter.Github.Token, "github-token", "", "GitHub API token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&cfg.Events.AMQPURL, "amqp-url", "", "RabbitMQ URL")
	fs.StringVar(&cfg.Events.Exchange, "events-exchange", "", "Events fanout exchange")
	fs.IntVar(&cfg.Events.QueueSize, "events-queue-size", 0, "Events queue capacity")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
