package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"traffic-light-service/internal/clock"
	"traffic-light-service/internal/core"
	"traffic-light-service/internal/hardware"
	"traffic-light-service/internal/logger"
	"traffic-light-service/internal/messaging"
)

func main() {
	// Service log level
	var serviceLogLevel int
	flag.IntVar(&serviceLogLevel, "log", 3, "Service log level (0=NONE, 1=ERROR, 2=WARN, 3=INFO, 4=DEBUG)")

	cfg := hardware.DefaultConfig()
	flag.StringVar(&cfg.Chip, "chip", cfg.Chip, "GPIO chip")
	flag.IntVar(&cfg.Red, "red", cfg.Red, "Red lamp line")
	flag.IntVar(&cfg.Yellow, "yellow", cfg.Yellow, "Yellow lamp line")
	flag.IntVar(&cfg.Green, "green", cfg.Green, "Green lamp line")
	flag.IntVar(&cfg.Blink, "blink", cfg.Blink, "Blink lamp line")
	flag.IntVar(&cfg.Emergency, "emergency", cfg.Emergency, "Emergency button line (falling edge)")
	flag.IntVar(&cfg.Power, "power", cfg.Power, "Power button line (falling edge)")
	flag.IntVar(&cfg.BlinkButton, "blink-button", cfg.BlinkButton, "Blink button line (polled)")

	var redisAddr string
	flag.StringVar(&redisAddr, "redis", "", "Local Redis address for status publishing, e.g. 127.0.0.1:6379 (disabled if empty)")

	flag.Parse()

	// Create standard logger with appropriate format
	var stdLogger *log.Logger
	if os.Getenv("INVOCATION_ID") != "" {
		// Running under systemd, use minimal format
		stdLogger = log.New(os.Stdout, "", 0)
	} else {
		// Running interactively, use timestamps
		stdLogger = log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix)
	}

	// Create leveled logger
	l := logger.NewLogger(stdLogger, logger.LogLevel(serviceLogLevel))

	l.Infof("Starting traffic light service...")

	if err := cfg.Validate(); err != nil {
		l.Fatalf("Invalid configuration: %v", err)
	}

	var publisher core.StatePublisher
	if redisAddr != "" {
		publisher = messaging.NewRedisPublisher(redisAddr, l.WithTag("redis"))
	}

	io := hardware.NewLinuxHardwareIO(cfg, l.WithTag("hardware"))
	system := core.NewTrafficLightSystem(io, publisher, clock.NewMonotonic(), l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := system.Start(ctx); err != nil {
		l.Fatalf("Failed to start system: %v", err)
	}

	l.Infof("System started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		l.Infof("Received signal %v, shutting down...", sig)
		cancel()
	}()

	if err := system.Run(ctx); err != nil {
		l.Errorf("Main loop failed: %v", err)
	}
	system.Shutdown()
	l.Infof("Shutdown complete")
}
