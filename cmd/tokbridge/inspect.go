package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tokbridge/internal/hftok"
)

func inspectCmd() *cli.Command {
	flags := tokenizerFlags()
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Load a tokenizer model and report basic information",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyConfig(cmd, LoadConfig())

			if tokenizerPath == "" {
				return fmt.Errorf("no tokenizer given: pass --tokenizer or set tokenizer_path in the config file")
			}
			model, err := os.ReadFile(tokenizerPath)
			if err != nil {
				return fmt.Errorf("read tokenizer model: %w", err)
			}

			tok, err := hftok.FromBytes(model)
			if err != nil {
				return fmt.Errorf("load tokenizer: %w", err)
			}
			defer func() {
				_ = tok.Close()
			}()

			fmt.Printf("model:      %s\n", tokenizerPath)
			fmt.Printf("size:       %d bytes\n", len(model))
			fmt.Printf("vocab size: %d\n", tok.VocabSize())
			return nil
		},
	}
}
