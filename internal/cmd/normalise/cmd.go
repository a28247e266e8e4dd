package normalise

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dave-shawley/coercion/internal/flags/enum"
	"github.com/dave-shawley/coercion/serialisation"
)

const (
	FlagOutput          = "output"
	FlagOutputShorthand = "o"
	FlagConcurrency     = "concurrency"

	// Stdin is the file name that reads from standard input.
	Stdin = "-"
)

// New returns the normalise command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "normalise [FILE...]",
		Aliases: []string{"normalize"},
		Short:   "Normalise YAML or JSON documents and write them in a canonical encoding",
		Long: fmt.Sprintf(`Normalise reads YAML or JSON documents, normalises every key and value and
writes the result in the encoding selected with --%[1]s.

Files are processed concurrently and written to stdout in argument order.
Without arguments, or with %[2]q, the document is read from stdin.

Encodings:
  json: indented JSON
  jcs:  canonical JSON (RFC 8785), identical bytes for equal documents
  yaml: YAML`, FlagOutput, Stdin),
		Example: `  coerce normalise --output jcs descriptor.yaml
  cat data.json | coerce normalise -o yaml`,
		Args:              cobra.ArbitraryArgs,
		RunE:              Normalise,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	enum.VarP(cmd.Flags(), FlagOutput, FlagOutputShorthand, []string{
		serialisation.JSON,
		serialisation.JCS,
		serialisation.YAML,
	}, "encoding of the normalised documents")
	cmd.Flags().Int(FlagConcurrency, runtime.NumCPU(), "maximum number of documents processed at once")

	return cmd
}

// Normalise is the RunE of the normalise command.
func Normalise(cmd *cobra.Command, args []string) error {
	output, err := enum.Get(cmd.Flags(), FlagOutput)
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt(FlagConcurrency)
	if err != nil {
		return err
	}
	if concurrency < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", FlagConcurrency, concurrency)
	}

	if len(args) == 0 {
		args = []string{Stdin}
	}
	if err := checkStdin(args); err != nil {
		return err
	}

	results := make([][]byte, len(args))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(concurrency)
	for i, name := range args {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			encoded, err := process(ctx, cmd.InOrStdin(), name, output)
			if err != nil {
				slog.ErrorContext(ctx, "failed to normalise document", slog.String("source", name), slog.String("error", err.Error()))
				return fmt.Errorf("normalising %s: %w", name, err)
			}
			results[i] = encoded
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return write(cmd.OutOrStdout(), results, output)
}

func checkStdin(args []string) error {
	seen := false
	for _, name := range args {
		if name != Stdin {
			continue
		}
		if seen {
			return fmt.Errorf("%q may only be given once", Stdin)
		}
		seen = true
	}
	return nil
}

func process(ctx context.Context, stdin io.Reader, name, output string) ([]byte, error) {
	data, err := read(stdin, name)
	if err != nil {
		return nil, err
	}
	doc, err := serialisation.Decode(data)
	if err != nil {
		return nil, err
	}
	encoded, err := serialisation.Encode(doc, output)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "normalised document",
		slog.String("source", name),
		slog.String("output", output),
		slog.Int("bytes", len(encoded)))
	return encoded, nil
}

func read(stdin io.Reader, name string) ([]byte, error) {
	if name == Stdin {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// write emits the documents in order, each terminated by a newline.
// YAML documents are separated by "---".
func write(w io.Writer, results [][]byte, output string) error {
	for i, doc := range results {
		if output == serialisation.YAML && i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if !bytes.HasSuffix(doc, []byte("\n")) {
			doc = append(doc, '\n')
		}
		if _, err := w.Write(doc); err != nil {
			return err
		}
	}
	return nil
}
