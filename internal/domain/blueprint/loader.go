package blueprint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"
)

// EngineVersion is the blueprint engine version this build implements.
// Documents may pin a minimum via meta.requires.
const EngineVersion = "v0.9.0"

// Loader loads blueprint documents from the filesystem and composes them
// into a TreeNode tree.
type Loader struct {
	engine string
}

// NewLoader creates a Loader for the running engine version.
func NewLoader() *Loader {
	return &Loader{engine: EngineVersion}
}

// NewLoaderWithEngine creates a Loader that gates meta.requires against
// the given engine version. Used by tests.
func NewLoaderWithEngine(engine string) *Loader {
	return &Loader{engine: engine}
}

// Load reads the blueprint at path and recursively resolves its producer
// imports into child nodes. A producer import resolves to its declared
// source file, or to "<name>.yaml" next to the importing document; when
// neither exists the producer is treated as native and gets no child.
func (l *Loader) Load(path string) (*TreeNode, error) {
	return l.load(path, nil, nil)
}

func (l *Loader) load(path string, namespace []string, visiting []string) (*TreeNode, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, seen := range visiting {
		if seen == abs {
			chain := append(append([]string{}, visiting...), abs)
			return nil, NewCircularImportError(baseNames(chain))
		}
	}
	visiting = append(visiting, abs)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewBlueprintNotFoundError(path)
		}
		return nil, err
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, NewBlueprintParseError(path, err)
	}

	if doc.Meta.Requires != "" && semver.IsValid(doc.Meta.Requires) {
		if semver.Compare(l.engine, doc.Meta.Requires) < 0 {
			return nil, NewEngineIncompatibleError(path, doc.Meta.Requires, l.engine)
		}
	}

	node := &TreeNode{
		ID:            doc.Meta.ID,
		NamespacePath: namespace,
		Document:      doc,
		Children:      make(map[string]*TreeNode),
		SourcePath:    path,
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}

	dir := filepath.Dir(path)
	for _, p := range doc.Producers {
		childPath, ok := l.resolveImport(dir, p)
		if !ok {
			// Native producer, supplied by the execution host.
			continue
		}
		childNS := append(append([]string{}, namespace...), p.Name)
		child, err := l.load(childPath, childNS, visiting)
		if err != nil {
			return nil, err
		}
		node.Children[p.Name] = child
	}

	return node, nil
}

// resolveImport locates the file backing a producer import.
func (l *Loader) resolveImport(dir string, p ProducerImport) (string, bool) {
	if p.Source != "" {
		path := p.Source
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if fileExists(path) {
			return path, true
		}
		return "", false
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, p.Name+ext)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return names
}
