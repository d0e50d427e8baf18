package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// SystemWordlist is the usual location of the system dictionary on unix.
const SystemWordlist = "/usr/share/dict/words"

// PathResolver finds dictionaries relative to the places wordcheck is run from.
type PathResolver struct {
	executableDir string
	workDir       string
	configDir     string
	fallbacks     []string
}

// NewPathResolver creates a resolver rooted at the running executable.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	cwd, _ := os.Getwd()
	configDir, err := ResolveConfigDir()
	if err != nil {
		configDir = ConfigDirCandidates(homeDir)[0]
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workDir:       cwd,
		configDir:     configDir,
		fallbacks:     []string{SystemWordlist},
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr, nil
}

// Candidates lists where a dictionary named path may live, most specific first.
func (pr *PathResolver) Candidates(path string) []string {
	var candidates []string
	if path != "" {
		if filepath.IsAbs(path) {
			candidates = append(candidates, path)
		} else {
			candidates = append(candidates,
				filepath.Join(pr.workDir, path),
				filepath.Join(pr.executableDir, path),
				filepath.Join(pr.configDir, path),
			)
		}
	}
	candidates = append(candidates, filepath.Join(pr.configDir, "words.txt"))
	return append(candidates, pr.fallbacks...)
}

// GetDictPath returns the first candidate that exists. When none does the
// requested path is returned as is so the loader can report it.
func (pr *PathResolver) GetDictPath(path string) string {
	for _, candidate := range pr.Candidates(path) {
		if FileExists(candidate) {
			log.Debugf("Found dictionary: %s", candidate)
			return candidate
		}
		log.Debugf("Dictionary candidate not found: %s", candidate)
	}
	return path
}
