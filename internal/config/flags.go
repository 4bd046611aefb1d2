package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-r redis address
//	-c/-config json file path with configs
//	-env deployment environment (development, production)
//	-base-url public front-end URL used in reset links
//	-log-level log level
//	-session-secret session signing secret
//	-session-ttl session lifetime (e.g., "720h")
//	-reset-ttl reset token lifetime (e.g., "72h")
//	-mail-provider mail provider (log, resend)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-hashing-workers size of the password hashing pool
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, redisAddress string
	var jsonConfigPath string
	var environment, baseURL, logLevel string
	var sessionSecret string
	var sessionTTL, resetTTL time.Duration
	var mailProvider string
	var requestTimeout, shutdownTimeout time.Duration
	var hashingWorkers int

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "r", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Environment (development, production)")
	fs.StringVar(&baseURL, "base-url", "", "Public front-end URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session signing secret")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 720h)")
	fs.DurationVar(&resetTTL, "reset-ttl", 0, "Reset token lifetime (e.g., 72h)")
	fs.StringVar(&mailProvider, "mail-provider", "", "Mail provider (log, resend)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.IntVar(&hashingWorkers, "hashing-workers", 0, "Password hashing pool size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			BaseURL:     baseURL,
			LogLevel:    logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		Session: Session{
			Secret: sessionSecret,
			TTL:    sessionTTL,
		},
		Reset: Reset{
			TokenTTL: resetTTL,
		},
		Mail: Mail{
			Provider: mailProvider,
		},
		Hashing: Hashing{
			Workers: hashingWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means "all interfaces". Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
