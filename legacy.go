package patchnotes

import "strings"

// Legacy color and format codes used by the in-game text renderer.
const (
	codeTitle  = "§6§l"
	codeBold   = "§l"
	codeGray   = "§7"
	codeLink   = "§9§n"
	codeError  = "§c"
	codeAlert  = "§c§l"
	codeSource = "§7Source: "
)

// LegacyLines renders notes as the color-coded line stream understood by
// the in-game screen: a title line, the source link, then one line per
// block. Image blocks become <img src="..."> lines.
func LegacyLines(notes *PatchNotes) []string {
	lines := make([]string, 0, len(notes.Blocks)+4)

	if notes.Fallback {
		lines = append(lines, codeAlert+notes.Title, "")
	} else {
		lines = append(lines, codeTitle+notes.Title, "")
		if notes.SourceURL != "" {
			lines = append(lines, codeSource+codeLink+notes.SourceURL, "")
		}
	}

	for _, b := range notes.Blocks {
		lines = append(lines, LegacyLine(b))
	}
	return lines
}

// LegacyLine renders a single block with its legacy style prefix.
// Blank lines carry no prefix.
func LegacyLine(b Block) string {
	if b.Kind == BlockImage {
		return `<img src="` + b.URL + `">`
	}
	if b.Text == "" {
		return ""
	}

	switch b.Style {
	case StyleHeader:
		return codeTitle + b.Text
	case StyleBold:
		return codeBold + b.Text
	case StyleLink:
		return codeLink + b.Text
	case StyleError:
		return codeError + b.Text
	default:
		return codeGray + b.Text
	}
}

// ansiCodes maps legacy codes to terminal SGR parameters.
// Colors reset any active formatting, as they do in game.
var ansiCodes = map[rune]string{
	'0': "0;30", '1': "0;34", '2': "0;32", '3': "0;36",
	'4': "0;31", '5': "0;35", '6': "0;33", '7': "0;37",
	'8': "0;90", '9': "0;94", 'a': "0;92", 'b': "0;96",
	'c': "0;91", 'd': "0;95", 'e': "0;93", 'f': "0;97",
	'l': "1", 'm': "9", 'n': "4", 'o': "3", 'r': "0",
}

// ANSI converts legacy codes in line to terminal escape sequences.
// Unknown codes and the obfuscation code are dropped.
func ANSI(line string) string {
	var sb strings.Builder
	styled := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '§' || i+1 >= len(runes) {
			sb.WriteRune(runes[i])
			continue
		}
		i++
		code := runes[i]
		if code >= 'A' && code <= 'Z' {
			code += 'a' - 'A'
		}
		if sgr, ok := ansiCodes[code]; ok {
			sb.WriteString("\x1b[" + sgr + "m")
			styled = true
		}
	}

	if styled {
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

// StripCodes removes legacy codes from line.
func StripCodes(line string) string {
	var sb strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '§' && i+1 < len(runes) {
			i++
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}
