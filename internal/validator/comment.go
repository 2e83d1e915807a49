package validator

import "strings"

// splitContentLines splits document text into lines without their
// terminators. A trailing newline does not open an extra empty line.
func splitContentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// stripComment removes a trailing LaTeX comment from a line. An
// unescaped % starts a comment to end of line. The second return is
// true when the whole line is a comment.
func stripComment(line string) (string, bool) {
	if strings.HasPrefix(strings.TrimSpace(line), "%") {
		return "", true
	}

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++ // escaped character, including \%
		case '%':
			return line[:i], false
		}
	}
	return line, false
}
