package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/statehouse/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "output"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate arity variants for statehouse combines",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Path of the generated file",
				Value: "observe/combine.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for combine started !")
	defer func() {
		log.Printf("Codegen for combine finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	output := cmd.String(outputKey)

	contents := templates.CombineGen(int(genericParamCount))
	if err := os.WriteFile(output, []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
