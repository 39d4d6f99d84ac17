package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/davecgh/go-spew/spew"
	"github.com/span-go/span/span"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const prompt = "span> "
const maxSuggestionDistance = 3

var replCommands = []string{
	"load",
	"take",
	"split",
	"slice",
	"pos",
	"cmp",
	"icmp",
	"len",
	"dump",
	"reset",
	"help",
	"exit",
}

// runRepl reads commands line by line and applies them to a current span
// over the loaded carrier. Consumption commands advance the current span so
// absolute offsets can be watched across splits.
func runRepl() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	caser := cases.Title(language.AmericanEnglish)

	carrier := span.Text("")
	current := span.From(carrier)

	if interactive {
		fmt.Printf("%s %s. Type `help` for commands.\n", programName, version)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(prompt)
		}
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "load":
			carrier = span.Text(strings.Join(args, " "))
			current = span.From(carrier)
			fmt.Println(current)
		case "take":
			n, err := argInt(args, 0)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(current.Take(n))
		case "split":
			n, err := argInt(args, 0)
			if err != nil {
				fmt.Println(err)
				continue
			}
			rest, taken := current.TakeSplit(n)
			fmt.Printf("taken: %v\nrest:  %v\n", taken, rest)
			current = rest
		case "slice":
			a, err := argInt(args, 0)
			if err != nil {
				fmt.Println(err)
				continue
			}
			b, err := argInt(args, 1)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(current.Slice(a, b))
		case "pos":
			if len(args) == 0 {
				fmt.Println("Expected argument <char>")
				continue
			}
			needle := []rune(args[0])[0]
			index, found := current.Position(func(r rune) bool { return r == needle })
			if !found {
				fmt.Println("no match")
				continue
			}
			fmt.Println(index)
		case "cmp":
			result := current.Compare(span.Text(strings.Join(args, " ")))
			fmt.Println(caser.String(result.String()))
		case "icmp":
			result := current.CompareNoCase(span.Text(strings.Join(args, " ")))
			fmt.Println(caser.String(result.String()))
		case "len":
			fmt.Println(current.Len())
		case "dump":
			fmt.Print(spew.Sdump(current))
		case "reset":
			current = span.From(carrier)
			fmt.Println(current)
		case "help":
			fmt.Println(strings.Join(replCommands, " "))
		case "exit":
			return nil
		default:
			message := fmt.Sprintf("Unknown command `%s`", command)
			if suggestion := closestCommand(command); suggestion != "" {
				message += fmt.Sprintf(", did you mean `%s`?", suggestion)
			}
			fmt.Println(message)
		}
	}

	return scanner.Err()
}

func argInt(args []string, index int) (int, error) {
	if index >= len(args) {
		return 0, fmt.Errorf("Expected at least %d argument(s)", index+1)
	}
	n, err := strconv.Atoi(args[index])
	if err != nil {
		return 0, fmt.Errorf("Illegal argument `%s`: expected an integer", args[index])
	}
	return n, nil
}

func closestCommand(input string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, command := range replCommands {
		if distance := levenshtein.ComputeDistance(input, command); distance < bestDistance {
			best = command
			bestDistance = distance
		}
	}
	return best
}
