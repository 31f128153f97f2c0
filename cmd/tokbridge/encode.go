package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tokbridge/pkg/bridge"
)

func encodeCmd() *cli.Command {
	var raw bool

	flags := tokenizerFlags()
	flags = append(flags, loggingFlags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "raw",
		Usage:       "print token ids one per line instead of the JSON payload",
		Destination: &raw,
	})

	return &cli.Command{
		Name:      "encode",
		Usage:     "Tokenize text and print the bridge JSON payload",
		ArgsUsage: "TEXT",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyConfig(cmd, LoadConfig())
			log := newLogger()

			if tokenizerPath == "" {
				return fmt.Errorf("no tokenizer given: pass --tokenizer or set tokenizer_path in the config file")
			}
			text := strings.Join(cmd.Args().Slice(), " ")

			model, err := os.ReadFile(tokenizerPath)
			if err != nil {
				return fmt.Errorf("read tokenizer model: %w", err)
			}

			reg := bridge.NewRegistry(bridge.WithLogger(log))
			handle := reg.Create(model)
			if handle == bridge.NullHandle {
				return fmt.Errorf("tokenizer model rejected: %s", tokenizerPath)
			}
			defer reg.Destroy(handle)

			payload := reg.Tokenize(handle, text)
			if !raw {
				fmt.Println(payload)
				return nil
			}

			var result struct {
				IDs []uint32 `json:"ids"`
			}
			if err := json.Unmarshal([]byte(payload), &result); err != nil {
				return fmt.Errorf("parse bridge payload: %w", err)
			}
			for _, id := range result.IDs {
				fmt.Println(id)
			}
			return nil
		},
	}
}
