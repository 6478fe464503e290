// Package greeting builds the output lines for the greet command. Inputs
// arrive as optionals because every flag may be omitted, and validation
// failures surface as coded faults rather than bare errors.
package greeting

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gopkg.microglot.org/maybe.go/fault"
	"gopkg.microglot.org/maybe.go/optional"
	"gopkg.microglot.org/maybe.go/result"
)

const (
	CodeNameMissing = "G0001"
	CodeAgeMissing  = "G0002"
	CodeAgeInvalid  = "G0003"
)

// Language maps a BCP 47 code to a tag for casing. An absent or
// unparseable code falls back to English.
func Language(raw optional.Optional[string]) language.Tag {
	return optional.FlatMap(raw, func(code string) optional.Optional[language.Tag] {
		tag, err := language.Parse(code)
		return optional.FromResult(result.FromTuple(tag, err))
	}).GetOrElse(language.English)
}

// Greet renders the greeting line for a guest, title-casing the name with
// the casing rules of tag. A missing name is a fault because the line
// cannot be rendered without one.
func Greet(name optional.Optional[string], tag language.Tag) result.Result[string, fault.Fault] {
	named := optional.ToResult(name, func() fault.Fault {
		return fault.New(CodeNameMissing, "no name provided")
	})
	return result.Map(named, func(name string) string {
		return fmt.Sprintf("Hello, %s!", cases.Title(tag).String(name))
	})
}

// Headline renders the shouted form of the greeting, upper-casing the name
// with the casing rules of tag. A missing name renders as a placeholder.
func Headline(name optional.Optional[string], tag language.Tag) string {
	return optional.Map(name, cases.Upper(tag).String).GetOrElse("?")
}

// Age validates an optional age flag. Absence and invalidity are distinct
// faults so the caller can decide which of the two it tolerates.
func Age(raw optional.Optional[string]) result.Result[int, fault.Fault] {
	provided := optional.ToResult(raw, func() fault.Fault {
		return fault.New(CodeAgeMissing, "no age provided")
	})
	return result.FlatMap(provided, parseAge)
}

func parseAge(raw string) result.Result[int, fault.Fault] {
	n, err := strconv.Atoi(raw)
	parsed := result.MapErr(result.FromTuple(n, err), func(err error) fault.Fault {
		return fault.Wrap(CodeAgeInvalid, err)
	})
	return result.FlatMap(parsed, func(n int) result.Result[int, fault.Fault] {
		if n <= 0 {
			return result.Err[int, fault.Fault](fault.New(CodeAgeInvalid, fmt.Sprintf("age must be positive, got %d", n)))
		}
		return result.Ok[int, fault.Fault](n)
	})
}

// WithAge appends the age sentence to a greeting line when an age is known.
func WithAge(line string, age optional.Optional[int]) string {
	return optional.Map(age, func(n int) string {
		return fmt.Sprintf("%s You are %d.", line, n)
	}).GetOrElse(line)
}
