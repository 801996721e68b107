package calculator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type operation struct {
	symbol string
	apply  func(a, b float64) (float64, error)
}

var operations = map[string]operation{
	"1": {"+", func(a, b float64) (float64, error) { return Add(a, b), nil }},
	"2": {"-", func(a, b float64) (float64, error) { return Subtract(a, b), nil }},
	"3": {"*", func(a, b float64) (float64, error) { return Multiply(a, b), nil }},
	"4": {"/", Divide},
}

// Run shows the calculator menu until the user picks Exit or input ends.
func Run(r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)

	for {
		fmt.Fprint(w, "\nSimple Calculator\n1. Add\n2. Subtract\n3. Multiply\n4. Divide\n5. Exit\n")
		choice, err := readLine(in, w, "Choose operation (1-5): ")
		if err != nil {
			return eofIsDone(err)
		}

		if choice == "5" {
			fmt.Fprintln(w, "Exiting calculator.")
			return nil
		}

		a, errA := readNumber(in, w, "Enter first number: ")
		if errors.Is(errA, io.EOF) {
			return nil
		}
		b, errB := readNumber(in, w, "Enter second number: ")
		if errors.Is(errB, io.EOF) {
			return nil
		}
		if errA != nil || errB != nil {
			fmt.Fprintln(w, "Invalid input. Please enter numbers.")
			continue
		}

		op, ok := operations[choice]
		if !ok {
			fmt.Fprintln(w, "Invalid choice. Please select 1-5.")
			continue
		}

		res, err := op.apply(a, b)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintf(w, "Result: %s %s %s = %s\n", format(a), op.symbol, format(b), format(res))
	}
}

func readLine(in *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readNumber(in *bufio.Reader, w io.Writer, prompt string) (float64, error) {
	s, err := readLine(in, w, prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func eofIsDone(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
