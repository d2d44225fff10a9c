package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argsPredictor is implemented by commands whose positional arguments can be completed.
type argsPredictor interface {
	Args() complete.Predictor
}

// Completion describes the stk command line for shell completion: global
// flags from top, and every subcommand with its own flags.
func Completion(top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Flags: flagPredictors(top),
		Sub:   make(map[string]*complete.Command),
	}

	var names []string
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if a, ok := c.(argsPredictor); ok {
			sub.Args = a.Args()
		}
		root.Sub[c.Name()] = sub
		names = append(names, c.Name())
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["flags"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["commands"] = &complete.Command{}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "prices":
			flags[f.Name] = predict.Files("*.json")
		case f.Name == "o":
			flags[f.Name] = predict.Dirs("*")
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
