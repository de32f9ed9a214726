package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// ResultFileEnv names the variable the wrapper uses to hand efm a file for
// the directory chosen with x.
const ResultFileEnv = "EFM_RESULT_FILE"

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable resolves the binary the wrapper should call. Defaults to
	// os.Executable.
	Executable func() (string, error)
}

// PrintSetup writes a shell function named efm that runs the browser and
// changes into the directory it reports.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	executable := cfg.Executable
	if executable == nil {
		executable = os.Executable
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	epath, err := executable()
	if err != nil || epath == "" {
		epath = "efm"
	}
	quoted := strconv.Quote(epath)

	var script string
	switch shell {
	case "fish":
		script = fmt.Sprintf(fishTemplate, quoted, ResultFileEnv, quoted)
	case "pwsh":
		script = fmt.Sprintf(pwshTemplate, quoted, ResultFileEnv, quoted, ResultFileEnv)
	default:
		script = fmt.Sprintf(posixTemplate, quoted, ResultFileEnv, quoted)
	}
	_, err = io.WriteString(w, script)
	return err
}

const posixTemplate = `efm() {
    if [ "$#" -gt 0 ]; then
        command %s "$@"
        return $?
    fi

    efm_result=$(mktemp "${TMPDIR:-/tmp}/efm.XXXXXX") || return 1
    %s="$efm_result" command %s
    efm_status=$?
    if [ -s "$efm_result" ]; then
        efm_dest=$(cat "$efm_result" 2>/dev/null)
        if [ -d "$efm_dest" ]; then
            cd "$efm_dest"
        fi
    fi
    rm -f "$efm_result"
    return $efm_status
}
`

const fishTemplate = `function efm
    if test (count $argv) -gt 0
        command %s $argv
        return $status
    end

    set -l efm_result (mktemp)
    or return 1
    env %s=$efm_result %s
    set -l efm_status $status
    if test -s "$efm_result"
        set -l efm_dest (cat "$efm_result" 2>/dev/null)
        if test -d "$efm_dest"
            builtin cd "$efm_dest"
        end
    end
    rm -f "$efm_result"
    return $efm_status
end
`

const pwshTemplate = `function efm {
    if ($args.Count -gt 0) {
        & %s @args
        return
    }

    $resultFile = [System.IO.Path]::GetTempFileName()
    $env:%s = $resultFile
    try {
        & %s
    } finally {
        Remove-Item Env:%s -ErrorAction SilentlyContinue
    }
    $dest = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue
    Remove-Item $resultFile -ErrorAction SilentlyContinue
    if ($dest -and (Test-Path $dest.Trim() -PathType Container)) {
        Set-Location $dest.Trim()
    }
}
`

// DetectParentShellName names the shell that started efm, or "" when the
// parent process cannot be inspected.
func DetectParentShellName() string {
	return parentShellName(os.Getppid(), processName)
}

func parentShellName(ppid int, lookup func(int) (string, error)) string {
	if ppid <= 1 {
		return ""
	}
	name, err := lookup(ppid)
	if err != nil {
		return ""
	}
	return canonicalShellName(normalizeShellName(name))
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	// login shells show up as "-zsh" in the process table
	base = strings.TrimPrefix(base, "-")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, `'`} {
		if rest, ok := strings.CutPrefix(value, quote); ok {
			if idx := strings.Index(rest, quote); idx >= 0 {
				return rest[:idx]
			}
			return rest
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
