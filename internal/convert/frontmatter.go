package convert

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// extractFrontMatter lifts a leading `---` YAML block off the content and
// returns its title plus the remaining body. Without this step the
// opening delimiter would be misread as a horizontal rule. Content with
// no front matter, an unterminated block, or unparsable YAML comes back
// untouched.
func extractFrontMatter(content string) (title, body string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return "", content
	}

	var fm struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &fm); err != nil {
		return "", content
	}

	rest := lines[end+1:]
	for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	return fm.Title, strings.Join(rest, "\n")
}
