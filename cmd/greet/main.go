// Command greet prints a localized greeting for an optionally described
// guest. The name comes from --name or the first bare argument, and every
// input may be omitted: a missing name is fatal, a missing age is tolerated,
// and a missing language falls back to English.
package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/pflag"

	"gopkg.microglot.org/maybe.go/cmd/internal/greeting"
	"gopkg.microglot.org/maybe.go/fault"
	"gopkg.microglot.org/maybe.go/optional"
	"gopkg.microglot.org/maybe.go/result"
)

type opts struct {
	Name    string
	Age     string
	Lang    string
	Shout   bool
	Verbose bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("greet", pflag.PanicOnError)
	flags.StringVar(&op.Name, "name", "", "Name of the guest to greet.")
	flags.StringVar(&op.Age, "age", "", "Age of the guest in years.")
	flags.StringVar(&op.Lang, "lang", "", "BCP 47 tag used for casing, such as en or tr.")
	flags.BoolVar(&op.Shout, "shout", false, "Print the shouted form of the greeting.")
	flags.BoolVar(&op.Verbose, "verbose", false, "Enable debug logging.")
	_ = flags.Parse(os.Args[1:])

	if op.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var bare *string
	if args := flags.Args(); len(args) > 0 {
		bare = &args[0]
	}
	name := flagValue(flags, "name", op.Name).OrElse(optional.FromPtr(bare))
	tag := greeting.Language(flagValue(flags, "lang", op.Lang))
	log.Debugf("casing language: %s", tag)

	if op.Shout {
		fmt.Println(greeting.Headline(name, tag))
		return
	}

	faults := fault.NewCollector([]string{greeting.CodeAgeMissing})

	age := greeting.Age(flagValue(flags, "age", op.Age))
	if age.IsErr() {
		if f := faults.Collect(age.MustReason()); f != nil {
			log.WithError(f).Fatal("cannot greet")
		}
	}

	line, err := result.ToTuple(result.Map(greeting.Greet(name, tag), func(line string) string {
		return greeting.WithAge(line, optional.FromResult(age))
	}))
	if err != nil {
		log.WithError(err).Fatal("cannot greet")
	}

	for _, f := range faults.Collected() {
		log.Debugf("ignored: %s", f.Error())
	}
	fmt.Println(line)
}

// flagValue reports a flag as absent when it was never set on the command
// line, so an explicit --name="" still counts as a provided name.
func flagValue(flags *pflag.FlagSet, name string, value string) optional.Optional[string] {
	return optional.FromOk(value, flags.Changed(name))
}
