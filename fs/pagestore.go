// Package fs provides file-based storage for exported documentation.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/fwojciec/jassdoc"
)

// Ensure FileStore implements jassdoc.PageStore at compile time.
var _ jassdoc.PageStore = (*FileStore)(nil)

// FileStore implements jassdoc.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
	ext     string

	mu   sync.Mutex
	seen map[string]int
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name and
// ext the file extension including the dot.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name, ext string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		ext:     ext,
		seen:    make(map[string]int),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page to <source file>/<entry name><ext> in the temporary
// directory. Repeated names get a numeric suffix.
func (s *FileStore) Save(ctx context.Context, page *jassdoc.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := s.pagePath(page)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if !strings.HasPrefix(fullPath, s.tempDir()+string(filepath.Separator)) {
		return jassdoc.Errorf(jassdoc.EINVALID, "path traversal in %q", relPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPage(page)), 0644)
}

var unsafeRe = regexp.MustCompile(`[^\w.-]+`)

// pagePath returns the file path of page relative to the output directory.
func (s *FileStore) pagePath(page *jassdoc.Page) (string, error) {
	dir, err := SourceDir(page.Source)
	if err != nil {
		return "", err
	}

	name := strings.Trim(unsafeRe.ReplaceAllString(page.Name, "_"), "_")
	if name == "" {
		name = "_"
	}
	rel := filepath.Join(dir, name)

	s.mu.Lock()
	s.seen[rel]++
	n := s.seen[rel]
	s.mu.Unlock()

	if n > 1 {
		rel = fmt.Sprintf("%s-%d", rel, n)
	}
	return rel + s.ext, nil
}

// SourceDir converts a source URL to the directory holding its entries.
// Example: https://example.com/jassdoc/common.j → common.j
func SourceDir(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	base := path.Base(u.Path)
	if base == "." || base == "/" || base == ".." {
		return "", jassdoc.Errorf(jassdoc.EINVALID, "path traversal in source %q", rawURL)
	}
	return unsafeRe.ReplaceAllString(base, "_"), nil
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *jassdoc.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("name: ")
	b.WriteString(page.Name)
	b.WriteString("\nsignature: ")
	b.WriteString(page.Signature)
	b.WriteString("\nsource: ")
	b.WriteString(page.Source)
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	if !strings.HasSuffix(page.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
