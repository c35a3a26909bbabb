package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FileKeeper/internal/cli/commands"
	"FileKeeper/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// exitInterrupted — код выхода при прерывании по сигналу (128 + SIGINT).
const exitInterrupted = 130

func main() {
	cfg := config.NewConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, flag.Args())
	cancel()

	if code != 0 {
		os.Exit(code)
	}
}

// run выполняет команду и возвращает код выхода процесса.
// Если команда завершилась из-за отмены контекста, ошибка команды не важна: возвращаем 130.
func run(ctx context.Context, cfg *config.Config, args []string) int {
	if cfg.Version {
		printVersion()
		return 0
	}

	code := commands.Dispatch(ctx, cfg, args)
	if code != 0 && ctx.Err() != nil {
		fmt.Fprintln(commands.Out, "interrupted")
		return exitInterrupted
	}
	return code
}

func printVersion() {
	fmt.Fprintf(commands.Out, "FileKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
