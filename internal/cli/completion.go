package cli

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "q")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from the strategy list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Fibonacci index to calculate", ValueName: "number"},
	{Long: "algo", Help: "Strategy to use", IsAlgo: true, ValueName: "strategy"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "verify", Help: "Verify strategies against the reference sequence"},
	{Long: "verbose", Short: "v", Help: "Display full result value"},
	{Long: "details", Short: "d", Help: "Show performance details"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "calculate", Short: "c", Help: "Display the calculated value"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Prometheus endpoint listen address", ValueName: "address"},
	{Long: "completion", Help: "Generate shell completion script", Values: []string{"bash", "zsh"}, ValueName: "shell"},
	{Long: "no-color", Help: "Disable colorized output"},
}

// GenerateCompletion writes a shell completion script for the given shell.
//
// Parameters:
//   - out: The writer for the script.
//   - shell: The target shell, "bash" or "zsh".
//   - availableAlgos: The registered strategy names for --algo completion.
//
// Returns:
//   - error: A ConfigError for unsupported shells.
func GenerateCompletion(out io.Writer, shell string, availableAlgos []string) error {
	switch shell {
	case "bash":
		generateBashCompletion(out, availableAlgos)
		return nil
	case "zsh":
		generateZshCompletion(out, availableAlgos)
		return nil
	default:
		return apperrors.NewConfigError("unsupported completion shell %q (supported: bash, zsh)", shell)
	}
}

func allFlagForms() []string {
	var forms []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			forms = append(forms, "--"+f.Long)
		}
		if f.Short != "" {
			forms = append(forms, "-"+f.Short)
		}
	}
	return forms
}

func generateBashCompletion(out io.Writer, availableAlgos []string) {
	fmt.Fprintf(out, `# bash completion for fibbench
_fibbench() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
        --algo)
            COMPREPLY=($(compgen -W "%s all" -- "${cur}"))
            return
            ;;
        --timeout)
            COMPREPLY=($(compgen -W "30s 1m 5m 30m" -- "${cur}"))
            return
            ;;
        --completion)
            COMPREPLY=($(compgen -W "bash zsh" -- "${cur}"))
            return
            ;;
        --output|-o)
            COMPREPLY=($(compgen -f -- "${cur}"))
            return
            ;;
    esac

    COMPREPLY=($(compgen -W "%s" -- "${cur}"))
}
complete -F _fibbench fibbench
`, strings.Join(availableAlgos, " "), strings.Join(allFlagForms(), " "))
}

func generateZshCompletion(out io.Writer, availableAlgos []string) {
	fmt.Fprintf(out, "#compdef fibbench\n\n_fibbench() {\n    _arguments \\\n")
	for _, f := range flagRegistry {
		if f.Long == "" {
			continue
		}
		spec := fmt.Sprintf("        '--%s[%s]", f.Long, f.Help)
		switch {
		case f.IsAlgo:
			spec += fmt.Sprintf(":%s:(%s all)'", f.ValueName, strings.Join(availableAlgos, " "))
		case f.IsFile:
			spec += fmt.Sprintf(":%s:_files'", f.ValueName)
		case len(f.Values) > 0:
			spec += fmt.Sprintf(":%s:(%s)'", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			spec += fmt.Sprintf(":%s:'", f.ValueName)
		default:
			spec += "'"
		}
		fmt.Fprintf(out, "%s \\\n", spec)
	}
	fmt.Fprintf(out, "}\n\n_fibbench \"$@\"\n")
}
