package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"FileKeeper/internal/cli/api"
	"FileKeeper/internal/config"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a file with optional JSON attributes" }
func (uploadCmd) Usage() string       { return "upload <path> [attributes-json]" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	var attrs *string
	if len(args) == 2 {
		a := args[1]
		// сервер хранит атрибуты как есть, предупреждаем о невалидном JSON на стороне клиента
		if !json.Valid([]byte(a)) {
			fmt.Fprintln(Out, "warning: attributes are not valid JSON, stored as-is")
		}
		attrs = &a
	}
	res, err := api.UploadFile(ctx, cfg.ServerURL, args[0], attrs)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "uploaded: id=%d\n", res.ID)
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }
