package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a              loopback API address in format [host]:[port]
//	-storage        storage backend: memory, file or sqlite
//	-d              storage path (JSON document or SQLite database file)
//	-c/-config      json file path with configs
//	-request-timeout API request timeout (e.g. "10s")
//	-argon-time     Argon2id iterations
//	-argon-memory   Argon2id memory in KiB
//	-argon-threads  Argon2id parallelism
//	-auto-lock      lock an idle vault after this duration (e.g. "15m")
//	-date-layout    Go time layout of exported note dates
//	-log-level      zerolog level name
//	-log-file       client log file path
//	-remote         loopback API the client attaches to (e.g. 127.0.0.1:8080)
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-note-vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var backend, storagePath, jsonConfigPath string
	var requestTimeout, autoLock time.Duration
	var argonTime, argonMemory, argonThreads uint
	var dateLayout, logLevel, logFile, remoteAddress string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backend, "storage", "", "Storage backend: memory, file or sqlite")
	fs.StringVar(&storagePath, "d", "", "Storage path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.UintVar(&argonTime, "argon-time", 0, "Argon2id iterations")
	fs.UintVar(&argonMemory, "argon-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&argonThreads, "argon-threads", 0, "Argon2id threads")
	fs.DurationVar(&autoLock, "auto-lock", 0, "Lock an idle vault after this duration (e.g., 15m)")
	fs.StringVar(&dateLayout, "date-layout", "", "Export date layout")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&remoteAddress, "remote", "", "Loopback API address the client attaches to")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if argonThreads > 255 {
		return nil, fmt.Errorf("error parsing flags: argon-threads %d out of range", argonThreads)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			Backend: backend,
			Path:    storagePath,
		},
		Crypto: Crypto{
			ArgonTime:      uint32(argonTime),
			ArgonMemoryKiB: uint32(argonMemory),
			ArgonThreads:   uint8(argonThreads),
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			AutoLockAfter: autoLock,
		},
		Export: Export{
			DateLayout: dateLayout,
		},
		Client: Client{
			RemoteAddress: remoteAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
