package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type topicCmd struct {
	streams
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `stk topic [<topic>...]

  Show documentation for the given topics, or the list of topics.
  The topic '*' shows them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

// Args predicts the positional arguments of the command.
func (*topicCmd) Args() complete.Predictor {
	topics, _ := docs.GetAllTopics()
	return predict.Set(append(topics, "*"))
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(c.stdout(), doc)

	return subcommands.ExitSuccess
}
