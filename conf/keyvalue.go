package conf

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/cagecoin-project/getarg/errs"
)

func parseKeyValue(data []byte, name string) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		key, value, found := strings.Cut(text, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, errs.ErrConfigLine.WithArgs(name, line)
		}
		tokens = append(tokens, token(key, strings.TrimSpace(value)))
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.ErrConfigParse.WithArgs(name).Wrap(err)
	}

	return tokens, nil
}
