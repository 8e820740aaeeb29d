package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "lucro> "

// Chat runs an interactive session reading questions from r and writing
// answers to w, until "tchau", "sair" or the end of input.
//
// prompts are asked first, as if typed by the user.
func (a *Assistant) Chat(ctx context.Context, w io.Writer, r io.Reader, prompts ...string) error {
	in := bufio.NewReader(r)
	fmt.Fprintln(w, Greeting)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = in.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(w)
				return nil // Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
			input = strings.TrimSpace(input)
		}

		switch strings.ToLower(input) {
		case "":
			continue
		case "tchau", "sair", "bye":
			fmt.Fprintln(w, "Até mais! 👋")
			return nil
		}
		fmt.Fprintln(w, a.Ask(input))
	}
}
