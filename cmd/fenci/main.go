package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lwch/logging"
	"github.com/spf13/cobra"

	"github.com/fenci-dev/fenci/ailink"
	"github.com/fenci-dev/fenci/config"
	"github.com/fenci-dev/fenci/dictionary"
	"github.com/fenci-dev/fenci/rules"
	"github.com/fenci-dev/fenci/segmenter"
	"github.com/fenci-dev/fenci/util"
)

var (
	tokenColor = color.New(color.FgCyan).SprintFunc()
	sepColor   = color.New(color.FgHiBlack).SprintFunc()
	warnColor  = color.New(color.FgYellow).SprintFunc()
)

var (
	flagMode  string
	flagRules []string
	flagDict  string
	flagStop  string
)

func main() {
	root := &cobra.Command{
		Use:   "fenci [text...]",
		Short: "Multi-strategy text segmentation",
		Long: "Segments text with one of several strategies: smart, chinese, english,\n" +
			"code, ai, sentence, halfSentence, charBreak, removeSymbols, random, or\n" +
			"a composed multi-rule pipeline. Reads from arguments, or interactively\n" +
			"from stdin when no arguments are given.",
		RunE: run,
	}
	root.Flags().StringVarP(&flagMode, "mode", "m", "smart", "segmentation mode")
	root.Flags().StringSliceVarP(&flagRules, "rule", "r", nil, "rules for multi mode (repeatable)")
	root.Flags().StringVar(&flagDict, "dict", "", "extra dictionary file layered over the built-in words")
	root.Flags().StringVar(&flagStop, "stop", "", "extra stop-word file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dict, err := buildDictionary(flagDict, flagStop)
	if err != nil {
		return err
	}

	seg := segmenter.New(dictionary.NewStore(dict), cfg,
		segmenter.WithAIClient(ailink.NewClient(cfg.AI)))

	mode := segmenter.ParseMode(flagMode)
	if mode.String() != flagMode && flagMode != "" {
		fmt.Fprintln(os.Stderr, warnColor(fmt.Sprintf("unknown mode %q, using smart", flagMode)))
	}

	process := func(text string) {
		if mode == segmenter.ModeMulti && len(flagRules) > 0 {
			printMulti(seg, text)
			return
		}
		printTokens(seg.Segment(context.Background(), text, mode))
	}

	if len(args) > 0 {
		process(strings.Join(args, " "))
		return nil
	}

	// Interactive mode.
	fmt.Println("Enter text to segment (Ctrl+D to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		if util.IsBlank(text) {
			continue
		}
		process(text)
	}
	return scanner.Err()
}

func buildDictionary(dictPath, stopPath string) (*dictionary.Dictionary, error) {
	dict := dictionary.Default()
	if dictPath != "" {
		if err := dict.Load(dictPath); err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
		logging.Info("loaded dictionary %s, %d words total", dictPath, dict.Size())
	}
	if stopPath != "" {
		if err := dict.LoadStop(stopPath); err != nil {
			return nil, fmt.Errorf("load stop words: %w", err)
		}
	}
	return dict, nil
}

func printTokens(tokens []string) {
	if len(tokens) == 0 {
		fmt.Println(sepColor("(no tokens)"))
		return
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tokenColor(tok)
	}
	fmt.Println(strings.Join(parts, sepColor(" / ")))
}

func printMulti(seg *segmenter.Segmenter, text string) {
	var selected []rules.ID
	for _, name := range flagRules {
		id, ok := rules.Parse(name)
		if !ok {
			fmt.Fprintln(os.Stderr, warnColor(fmt.Sprintf("unknown rule %q, ignored", name)))
			continue
		}
		selected = append(selected, id)
	}
	res, err := seg.Multi(text, selected)
	if err != nil {
		fmt.Fprintln(os.Stderr, warnColor(err.Error()))
		return
	}
	printTokens(res.Tokens)
	fmt.Println(sepColor("applied: " + strings.Join(res.Applied, ", ")))
	for _, c := range res.Conflicts {
		fmt.Println(sepColor(fmt.Sprintf("%s %s: %s", c.Rule, c.Action, c.Reason)))
	}
}
