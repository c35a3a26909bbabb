package commands

import (
	"context"
	"fmt"

	"FileKeeper/internal/cli/api"
	"FileKeeper/internal/config"
)

type filesCmd struct{}

func (filesCmd) Name() string        { return "files" }
func (filesCmd) Description() string { return "List stored files, newest first" }
func (filesCmd) Usage() string       { return "files" }

func (filesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := api.ListFiles(ctx, cfg.ServerURL)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No files")
		return nil
	}
	for _, f := range list {
		fmt.Fprintf(Out, "- %d  %s  %s\n", f.ID, f.FileName, f.UploadTime)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(filesCmd{}) }
