package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tagmate/tagmate/constants/lipgloss"
)

// InputPrompt reads one line of user input with a styled prompt.
func InputPrompt(reader *bufio.Reader) (string, error) {
	fmt.Print(lipgloss.BlueSky.Render("> "))

	userInput, err := reader.ReadString('\n')
	if userInput == "" {
		return "", nil
	}

	if err != nil {
		if err == io.EOF {
			return "", nil
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}

	return strings.TrimSpace(userInput), nil
}
