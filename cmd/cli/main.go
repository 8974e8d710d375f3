package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"codeberg.org/snippetlab/server/internal/config"
	"codeberg.org/snippetlab/server/internal/iterate"
	"codeberg.org/snippetlab/server/internal/llm"
	"codeberg.org/snippetlab/server/internal/logger"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// one-shot code iteration without going through the HTTP server:
// reads the snippet from a file or stdin, applies the change request,
// prints the modified code and renders the explanation
func main() {
	filePath := flag.String("file", "", "path to the code snippet (reads stdin when omitted)")
	timeout := flag.Duration("timeout", 2*time.Minute, "generation timeout")
	flag.Parse()

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: snippetlab [-file snippet.js] <change request>")
		os.Exit(2)
	}

	code, err := readCode(*filePath)
	if err != nil {
		logger.FatalErr(err, "failed to read code")
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	generator, err := llm.NewGenerator(cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create LLM generator")
	}

	service := iterate.New(generator)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := service.Iterate(ctx, iterate.IterationRequest{
		Code:   code,
		Prompt: prompt,
	})
	if err != nil {
		logger.FatalErr(err, "iteration failed")
	}

	printResult(resp)
}

// reads the snippet from the given file, or stdin when no path is set
func readCode(path string) (string, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}

	if err != nil {
		return "", err
	}

	code := string(data)
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("no code provided")
	}

	return code, nil
}

func printResult(resp *iterate.IterationResponse) {
	// plain output when piped so the modified code stays machine-readable
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(resp.Result.ModifiedCode)
		fmt.Fprintln(os.Stderr, resp.Result.Explanation)
		return
	}

	fmt.Println(headerStyle.Render("Modified code"))
	fmt.Println()
	fmt.Println(resp.Result.ModifiedCode)
	fmt.Println()
	fmt.Println(headerStyle.Render("Explanation"))

	if rendered, err := renderMarkdown(resp.Result.Explanation); err == nil {
		fmt.Print(rendered)
	} else {
		fmt.Println(resp.Result.Explanation)
	}

	fmt.Println(faintStyle.Render(fmt.Sprintf(
		"model: %s  tokens: %d in / %d out",
		resp.Model, resp.InputTokens, resp.OutputTokens,
	)))
}

func renderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(text)
}
