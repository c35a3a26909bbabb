package commands

import (
	"context"
	"fmt"

	"FileKeeper/internal/cli/api"
	"FileKeeper/internal/config"
)

type attributesCmd struct{}

func (attributesCmd) Name() string        { return "attributes" }
func (attributesCmd) Description() string { return "Print stored attributes of a file" }
func (attributesCmd) Usage() string       { return "attributes <id>" }

func (attributesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	attrs, err := api.GetAttributes(ctx, cfg.ServerURL, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, attrs)
	return nil
}

func init() { RegisterCmd(attributesCmd{}) }
