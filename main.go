package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/pipeline"
)

var (
	showTokens bool
	showAST    bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "d7kc <file>",
	Short: "Compiler front end for the D7K language",
	Long: `d7kc scans, parses and type-checks a D7K source file.
All lexical, syntax and semantic errors are reported in one run.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          compile,
}

func init() {
	rootCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream to stdout")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "print the syntax tree as JSON to stdout")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump scanner state to stderr")
}

func compile(cmd *cobra.Command, args []string) error {
	filepath := args[0]

	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filepath, err)
	}

	result := pipeline.Run(filepath, string(content), pipeline.Options{Debug: debug})

	if showTokens {
		for _, token := range result.Tokens {
			fmt.Fprintf(os.Stdout, "%d:%d\t%s\t%q\n",
				token.Start.Line, token.Start.Column, token.Kind, token.Lexeme)
		}
	}

	if showAST && result.Program != nil {
		if err := result.Program.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("cannot encode syntax tree: %w", err)
		}
	}

	result.Diagnostics.EmitAll()

	if result.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
