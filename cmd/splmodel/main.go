package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/splmodel/code"
	"github.com/viant/splmodel/coder"
	"github.com/viant/splmodel/config"
	"github.com/viant/splmodel/report"
	"github.com/viant/splmodel/repository"
	"gopkg.in/yaml.v3"
)

var (
	rootCmd = &cobra.Command{
		Use:   "splmodel",
		Short: "Inspect and maintain SPL toolkit source models",
	}
	configPath string
	strict     bool
	private    bool
	locations  bool
	namespace  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "splmodel.yaml", "Path to the configuration file")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Enforce list lower bounds and unset required attributes")
	summaryCmd.Flags().BoolVar(&private, "private", false, "Include non public artifacts")
	diffCmd.Flags().BoolVar(&locations, "locations", false, "Report source location changes")
	addFileCmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace declared by the source file")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(addFileCmd)
}

// initStore loads the configuration and creates the model store
func initStore() (*config.Config, *repository.Store) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg, repository.New(cfg.RepositoryOptions(log.Default())...)
}

// target returns the toolkit directory or model file argument, the configured root by default
func target(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Toolkit.Root
}

// load reads a model file when location names one, the toolkit directory model otherwise
func load(ctx context.Context, store *repository.Store, location string) *code.Document {
	var doc *code.Document
	var err error
	if strings.HasSuffix(location, ".xml") {
		doc, err = store.LoadFile(ctx, location)
	} else {
		doc, err = store.Load(ctx, location)
	}
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	return doc
}

func printYAML(value interface{}) {
	data, err := yaml.Marshal(value)
	if err != nil {
		log.Fatalf("Failed to render output: %v", err)
	}
	fmt.Print(string(data))
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir|file]",
	Short: "Validate a toolkit source model",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store := initStore()
		doc := load(cmd.Context(), store, target(cfg, args))
		options := cfg.ValidateOptions()
		if strict {
			options = append(options, code.WithStrict())
		}
		if err := code.Validate(doc.SourceModel, options...); err != nil {
			log.Fatalf("Invalid model: %v", err)
		}
		fmt.Printf("valid: %d source files\n", len(doc.SourceModel.SourceFile))
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary [dir|file]",
	Short: "Print the namespaces and artifacts of a toolkit source model",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store := initStore()
		doc := load(cmd.Context(), store, target(cfg, args))
		data, err := report.Summarize(doc.SourceModel, private).YAML()
		if err != nil {
			log.Fatalf("Failed to render summary: %v", err)
		}
		fmt.Print(string(data))
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Print structural differences between two source models",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		_, store := initStore()
		from := load(cmd.Context(), store, args[0])
		to := load(cmd.Context(), store, args[1])
		changes, err := report.Diff(from.SourceModel, to.SourceModel, locations)
		if err != nil {
			log.Fatalf("Failed to compare models: %v", err)
		}
		if len(changes) == 0 {
			fmt.Println("no changes")
			return
		}
		printYAML(changes)
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash [dir|file]",
	Short: "Print the fingerprint of a source model",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store := initStore()
		doc := load(cmd.Context(), store, target(cfg, args))
		fingerprint, err := code.Fingerprint(doc.SourceModel)
		if err != nil {
			log.Fatalf("Failed to fingerprint model: %v", err)
		}
		fmt.Printf("%016x\n", fingerprint)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [dir]",
	Short: "Rewrite a toolkit source model in canonical form",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store := initStore()
		dir := target(cfg, args)
		doc := load(cmd.Context(), store, dir)
		changed, err := store.Save(cmd.Context(), dir, doc.SourceModel)
		if err != nil {
			log.Fatalf("Failed to save model: %v", err)
		}
		if !changed {
			fmt.Printf("%s is up to date\n", store.ModelURL(dir))
			return
		}
		fmt.Printf("rewrote %s\n", store.ModelURL(dir))
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Find toolkit source models under root and summarize them",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store := initStore()
		dirs, err := store.Scan(cmd.Context(), target(cfg, args))
		if err != nil {
			log.Fatalf("Failed to scan: %v", err)
		}
		docs, err := store.LoadAll(cmd.Context(), dirs...)
		if err != nil {
			log.Fatalf("Failed to load models: %v", err)
		}
		for i, doc := range docs {
			model := doc.SourceModel
			fmt.Printf("%s: %d source files, namespaces: %s\n", dirs[i], len(model.SourceFile), strings.Join(model.Namespaces(), ", "))
		}
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect <path>",
	Short: "Print the toolkit root and source file uri of a path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store := initStore()
		toolkit, err := repository.NewDetector().Detect(args[0])
		if err != nil {
			log.Fatalf("Failed to detect toolkit: %v", err)
		}
		exists, err := store.Exists(cmd.Context(), toolkit.RootPath)
		if err != nil {
			log.Fatalf("Failed to check model: %v", err)
		}
		printYAML(map[string]interface{}{
			"root":     toolkit.RootPath,
			"marker":   toolkit.Marker,
			"uri":      toolkit.RelativePath,
			"model":    toolkit.ModelURL(cfg.Toolkit.ModelFile),
			"hasModel": exists,
		})
	},
}

var addFileCmd = &cobra.Command{
	Use:   "add-file <path>",
	Short: "Register an empty source file in its toolkit source model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg, store := initStore()
		toolkit, err := repository.NewDetector().Detect(args[0])
		if err != nil {
			log.Fatalf("Failed to detect toolkit: %v", err)
		}
		model := &code.SourceModel{}
		exists, err := store.Exists(ctx, toolkit.RootPath)
		if err != nil {
			log.Fatalf("Failed to check model: %v", err)
		}
		if exists {
			model = load(ctx, store, toolkit.RootPath).SourceModel
		}
		builder := coder.New(model, cfg.CoderOptions(toolkit.RootDirCount)...)
		absPath, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatalf("Failed to resolve %s: %v", args[0], err)
		}
		file, err := builder.CreateSourceFile(absPath)
		if err != nil {
			log.Fatalf("Failed to add source file: %v", err)
		}
		if namespace != "" {
			if _, err = builder.SetNamespace(file.URI, namespace); err != nil {
				log.Fatalf("Failed to set namespace: %v", err)
			}
		}
		if _, err = store.Save(ctx, toolkit.RootPath, builder.Model); err != nil {
			log.Fatalf("Failed to save model: %v", err)
		}
		fmt.Printf("added %s to %s\n", file.URI, store.ModelURL(toolkit.RootPath))
	},
}
