package puzzle

import "strings"

// Lines splits input into lines, dropping "\r" line-ending residue and
// any trailing blank lines. Interior blank lines are kept.
func Lines(input string) []string {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Blocks groups the lines of input into runs separated by one or more
// blank lines. Works for both "\n\n" and "\r\n\r\n" separators.
func Blocks(input string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}
