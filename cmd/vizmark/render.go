package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vizmark/compute"
	"github.com/katalvlaran/vizmark/infer"
	"github.com/katalvlaran/vizmark/model"
)

// document is the on-disk chart description the render command consumes.
type document struct {
	Spec  model.ChartSpec `json:"spec" yaml:"spec"`
	Data  any             `json:"data" yaml:"data"`
	Size  model.Size      `json:"size" yaml:"size"`
	Theme model.Theme     `json:"theme" yaml:"theme"`
}

func newRenderCmd() *cobra.Command {
	var (
		format    string
		autoInfer bool
		verbose   bool
		noWarn    bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "compute the render model for a chart document",
		Long: strings.TrimSpace(`
Compute the render model for a chart document (JSON or YAML):

  spec:  {type: bar, pad: 4}
  data:  {value: 42, max: 100}
  size:  {width: 120, height: 16}
  theme: {foreground: "#4F46E5", background: "#E5E7EB"}

With --infer the document's spec is ignored and the chart type is
inferred from the shape of data. The model is written to stdout;
diagnostic warnings go to stderr.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			spec, data := doc.Spec, doc.Data
			if autoInfer {
				spec, data, err = infer.Infer(doc.Data, infer.DefaultOptions())
				if err != nil {
					return fmt.Errorf("inferring chart type: %w", err)
				}
				// An inferred spec keeps the document's pad override.
				spec.Pad = doc.Spec.Pad
			}

			opts := []compute.Option{compute.WithTheme(doc.Theme)}
			if verbose {
				logger, lerr := zap.NewDevelopment()
				if lerr != nil {
					return lerr
				}
				defer func() { _ = logger.Sync() }()
				opts = append(opts, compute.WithLogger(logger))
			}

			rm := compute.Model(spec, data, doc.Size, opts...)

			if !noWarn && rm.Stats != nil {
				printWarnings(rm.Stats.Warnings)
			}

			out, err := encodeModel(rm, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or msgpack")
	cmd.Flags().BoolVar(&autoInfer, "infer", false, "infer the chart type from the data shape")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages")
	cmd.Flags().BoolVar(&noWarn, "no-warnings", false, "suppress the warning listing on stderr")

	return cmd
}

func loadDocument(path string) (document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return document{}, err
	}
	var doc document
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return document{}, fmt.Errorf("parsing %s: %w", path, err)
		}

		return doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return document{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return doc, nil
}

// encodeModel serializes the model; msgpack mirrors the kind-tagged JSON
// shape so both formats describe identical structures.
func encodeModel(rm *model.RenderModel, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(rm, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	case "msgpack":
		raw, err := json.Marshal(rm)
		if err != nil {
			return nil, err
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, err
		}

		return msgpack.Marshal(generic)
	default:
		return nil, fmt.Errorf("unknown format %q (want json or msgpack)", format)
	}
}

func printWarnings(warnings []model.DiagnosticWarning) {
	if len(warnings) == 0 {
		return
	}
	codeColor := color.New(color.FgYellow, color.Bold)
	pathColor := color.New(color.FgCyan)
	fmt.Fprintf(os.Stderr, "%d warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "  %s %s", codeColor.Sprint(w.Code), w.Message)
		if w.Path != "" {
			fmt.Fprintf(os.Stderr, " (%s)", pathColor.Sprint(w.Path))
		}
		if w.Hint != "" {
			fmt.Fprintf(os.Stderr, " (hint: %s)", w.Hint)
		}
		fmt.Fprintln(os.Stderr)
	}
}
