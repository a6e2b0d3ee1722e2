package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.LinkFS with in-memory storage. It also offers
// the write operations tests need to lay out files, directories and links.
//
// Paths are cleaned lexically before lookup, so intermediate directory
// links are not followed. Only the final component of a path can be a link.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode
	cwd   string
	umask os.FileMode

	// Error injection
	errorPaths map[string]error

	// Statistics
	lstatCount    int
	readlinkCount int
}

// fileNode represents a file, directory or link in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		cwd:        "/",
		umask:      0022,
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute form
func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.cwd, path)
	}
	return filepath.Clean(path)
}

// getNode retrieves a node at the given path
func (m *MemoryFS) getNode(op, path string) (*fileNode, error) {
	path = m.normalizePath(path)

	if err, ok := m.errorPaths[path]; ok {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}

	return node, nil
}

// getParentAndName splits a path into parent directory and filename
func (m *MemoryFS) getParentAndName(path string) (parent *fileNode, name string, err error) {
	path = m.normalizePath(path)
	dir := filepath.Dir(path)
	name = filepath.Base(path)

	parent, err = m.getNode("open", dir)
	if err != nil {
		return nil, "", err
	}

	if !parent.isDir {
		return nil, "", &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}

	return parent, name, nil
}

// WriteFile writes data to a file, creating parent directories as needed
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(name)
	if err := m.mkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	parent, filename, err := m.getParentAndName(path)
	if err != nil {
		return err
	}

	node := &fileNode{
		name:    filename,
		mode:    perm &^ m.umask,
		modTime: time.Now(),
		content: make([]byte, len(data)),
	}
	copy(node.content, data)

	parent.children[filename] = node
	m.files[path] = node

	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	path = m.normalizePath(path)

	if node, ok := m.files[path]; ok {
		if !node.isDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("file exists")}
		}
		return nil
	}

	current := "/"
	currentNode := m.files["/"]

	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}

		next := filepath.Join(current, part)

		if child, exists := currentNode.children[part]; exists {
			if !child.isDir {
				return &fs.PathError{Op: "mkdir", Path: next, Err: errors.New("not a directory")}
			}
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     part,
			mode:     perm | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}

		currentNode.children[part] = newDir
		m.files[next] = newDir

		currentNode = newDir
		current = next
	}

	return nil
}

// Symlink creates a symbolic link at link storing target verbatim.
// Missing parent directories are created.
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	linkPath := m.normalizePath(link)

	if _, ok := m.files[linkPath]; ok {
		return &fs.PathError{Op: "symlink", Path: link, Err: os.ErrExist}
	}

	if err := m.mkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return err
	}

	parent, filename, err := m.getParentAndName(linkPath)
	if err != nil {
		return err
	}

	node := &fileNode{
		name:     filename,
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: target,
	}

	parent.children[filename] = node
	m.files[linkPath] = node

	return nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readlinkCount++

	node, err := m.getNode("readlink", name)
	if err != nil {
		return "", err
	}

	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("not a symbolic link")}
	}

	return node.linkDest, nil
}

// Lstat returns file info without following symlinks
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lstatCount++

	node, err := m.getNode("lstat", name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// Chdir changes the directory relative paths are resolved against
func (m *MemoryFS) Chdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(dir)
	node, ok := m.files[path]
	if !ok {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}

	if !node.isDir {
		return &fs.PathError{Op: "chdir", Path: dir, Err: errors.New("not a directory")}
	}

	m.cwd = path
	return nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// Stats returns how many Lstat and Readlink calls have been served
func (m *MemoryFS) Stats() (lstats, readlinks int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lstatCount, m.readlinkCount
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }
