package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"FileKeeper/internal/cli/api"
	"FileKeeper/internal/config"
)

type downloadCmd struct{}

func (downloadCmd) Name() string { return "download" }
func (downloadCmd) Description() string {
	return "Download a file by id (default name is the server's attachment name)"
}
func (downloadCmd) Usage() string { return "download <id> [output-path]" }

func (downloadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	res, err := api.DownloadFile(ctx, cfg.ServerURL, id)
	if err != nil {
		return err
	}
	out := filepath.Base(res.FileName)
	if len(args) == 2 {
		out = args[1]
	}
	if err := os.WriteFile(out, res.Data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(Out, "saved %s (%d bytes, %s)\n", out, len(res.Data), res.ContentType)
	return nil
}

func init() { RegisterCmd(downloadCmd{}) }
