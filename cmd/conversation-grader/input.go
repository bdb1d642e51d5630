package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Selection is a 0-based half-open range over the conversation list.
// All selects everything regardless of Start/End.
type Selection struct {
	All   bool
	Start int
	End   int
}

// ParseSelection accepts "all"/"a", a bare positive integer N ("first N"),
// or an inclusive 1-based "start-end" range, and converts to the internal
// 0-based half-open form.
func ParseSelection(input string) (Selection, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "all" || s == "a" {
		return Selection{All: true}, nil
	}

	if strings.Contains(s, "-") {
		parts := strings.SplitN(s, "-", 2)
		start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return Selection{}, errors.New("invalid range format, use e.g. '11-50'")
		}
		if start <= 0 || end <= 0 || start > end {
			return Selection{}, errors.New("enter a valid 1-based range, e.g. '11-50'")
		}
		return Selection{Start: start - 1, End: end}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Selection{}, errors.New("enter a number, a range like '11-50', or 'all'")
	}
	if n <= 0 {
		return Selection{}, errors.New("enter a positive number")
	}
	return Selection{Start: 0, End: n}, nil
}

// promptSelection re-prompts until the input parses. Iterative on purpose:
// sustained bad input must not grow the stack.
func promptSelection(r *bufio.Reader, w io.Writer) (Selection, error) {
	for {
		fmt.Fprint(w, "\nEnter conversations to analyze (examples: '10', 'all', '11-50'): ")
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return Selection{}, err
		}
		sel, perr := ParseSelection(line)
		if perr != nil {
			fmt.Fprintln(w, perr.Error())
			if err != nil {
				// Input ended on a bad final line; nothing more to read.
				return Selection{}, err
			}
			continue
		}
		return sel, nil
	}
}

// confirm asks a yes/no question and treats anything but y/yes as no.
func confirm(r *bufio.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
